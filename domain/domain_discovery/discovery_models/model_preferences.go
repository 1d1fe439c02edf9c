package discovery_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserPreferences 用户偏好记录（可选；缺失时引擎回退到中性评分）
type UserPreferences struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	UserID       string             `bson:"user_id" json:"userId"`
	Destinations []string           `bson:"destinations" json:"destinations"` // 偏好目的地列表
	Categories   []string           `bson:"categories" json:"categories"`     // 偏好活动分类列表
	TravelStyle  string             `bson:"travel_style" json:"travelStyle"`  // 旅行风格标签
	Budget       string             `bson:"budget" json:"budget"`             // 预算偏好标签（如 "经济"、"高端"）
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}
