package discovery_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlacementTier 付费推广等级与其分数加成倍率
// Boost 随等级单调递增；具体数值是部署配置，不属于引擎核心
type PlacementTier struct {
	Level int     `bson:"level" json:"level"`
	Name  string  `bson:"name" json:"name"`
	Boost float64 `bson:"boost" json:"boost"`
}

// PlacementConfig 推广等级配置文档（单例配置）
type PlacementConfig struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Tiers     []PlacementTier    `bson:"tiers" json:"tiers"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// BoostForLevel 查找等级对应的加成倍率，未配置时返回 1.0（无加成）
func (c *PlacementConfig) BoostForLevel(level int) float64 {
	if c == nil {
		return 1.0
	}
	for _, t := range c.Tiers {
		if t.Level == level {
			return t.Boost
		}
	}
	return 1.0
}

// UserPlacement 用户当前持有的推广等级
type UserPlacement struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	UserID    string             `bson:"user_id" json:"userId"`
	TierLevel int                `bson:"tier_level" json:"tierLevel"`
	Active    bool               `bson:"active" json:"active"`
	ExpiresAt *time.Time         `bson:"expires_at,omitempty" json:"expiresAt,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
