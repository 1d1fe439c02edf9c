package discovery_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserBehaviorSignals 用户行为信号（按最近优先排序的ID列表）
// 由互动记录服务维护；引擎侧只读
type UserBehaviorSignals struct {
	ID              primitive.ObjectID  `bson:"_id" json:"id"`
	UserID          string              `bson:"user_id" json:"userId"`
	ViewedItemIDs   []string            `bson:"viewed_item_ids" json:"viewedItemIds"`     // 浏览过的内容项（最近在前）
	LikedItemIDs    []string            `bson:"liked_item_ids" json:"likedItemIds"`       // 点赞过的内容项
	SavedItemIDs    []string            `bson:"saved_item_ids" json:"savedItemIds"`       // 收藏过的内容项
	SearchedItemIDs []string            `bson:"searched_item_ids" json:"searchedItemIds"` // 搜索命中过的内容项
	FriendLikes     map[string][]string `bson:"friend_likes" json:"friendLikes"`          // 好友ID -> 其点赞的内容项ID列表
	FollowedUserIDs []string            `bson:"followed_user_ids" json:"followedUserIds"` // 关注的用户ID列表
	UpdatedAt       time.Time           `bson:"updated_at" json:"updatedAt"`
}
