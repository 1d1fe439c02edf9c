package discovery_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EngagementMetrics 单个内容项的互动计数器
// 由互动记录服务维护；引擎侧只读，唯一的例外是趋势批处理回写 trending_score
type EngagementMetrics struct {
	ID            primitive.ObjectID `bson:"_id" json:"id"`
	ItemID        string             `bson:"item_id" json:"itemId"`             // 内容项唯一标识符
	ViewCount     int64              `bson:"view_count" json:"viewCount"`       // 浏览次数
	SaveCount     int64              `bson:"save_count" json:"saveCount"`       // 收藏次数
	LikeCount     int64              `bson:"like_count" json:"likeCount"`       // 点赞次数
	CommentCount  int64              `bson:"comment_count" json:"commentCount"` // 评论次数
	ShareCount    int64              `bson:"share_count" json:"shareCount"`     // 分享次数
	AverageRating float64            `bson:"average_rating" json:"averageRating"` // 平均评分 (0-5)
	TrendingScore float64            `bson:"trending_score" json:"trendingScore"` // 趋势分数（批处理派生值）
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// TrendingUpdate 趋势批处理的单项回写命令
type TrendingUpdate struct {
	ItemID string  `bson:"item_id" json:"itemId"`
	Score  float64 `bson:"score" json:"score"`
}

// TrendingRefreshResult 趋势批处理执行结果
type TrendingRefreshResult struct {
	RunID     string    `json:"runId"`
	Processed int       `json:"processed"` // 处理的指标文档数
	Updated   int64     `json:"updated"`   // 实际回写的文档数
	StartedAt time.Time `json:"startedAt"`
	Elapsed   string    `json:"elapsed"`
}
