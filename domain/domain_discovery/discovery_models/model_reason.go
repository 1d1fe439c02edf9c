package discovery_models

// 推荐理由来源
const (
	ReasonSourceLiked    = "liked"
	ReasonSourceSearched = "searched"
	ReasonSourceViewed   = "viewed"
	ReasonSourceFriend   = "friend"
	ReasonSourceFollowed = "followed"
	ReasonSourceTrending = "trending"
	ReasonSourceLocation = "location"
	ReasonSourceSeasonal = "seasonal"
)

// RecommendationReason 推荐理由：解释某内容项为何被推荐
// 纯展示值对象，与排序分数相互独立
type RecommendationReason struct {
	Source       string   `bson:"source" json:"source"`             // 理由来源
	Weight       float64  `bson:"weight" json:"weight"`             // 权重 (0,1]
	Description  string   `bson:"description" json:"description"`   // 展示文案
	RelatedItems []string `bson:"related_items,omitempty" json:"relatedItems,omitempty"` // 关联对象（如点赞的好友ID）
}
