package discovery_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RankingConfig 排序权重配置文档（单例配置）
// 将散落在算法里的数字常量集中到一处，便于审计和独立测试
type RankingConfig struct {
	ID primitive.ObjectID `bson:"_id" json:"id"`

	// 因子组合权重，五项之和必须为 1.0
	RelevanceWeight  float64 `bson:"relevance_weight" json:"relevanceWeight"`
	PopularityWeight float64 `bson:"popularity_weight" json:"popularityWeight"`
	FreshnessWeight  float64 `bson:"freshness_weight" json:"freshnessWeight"`
	QualityWeight    float64 `bson:"quality_weight" json:"qualityWeight"`
	ProximityWeight  float64 `bson:"proximity_weight" json:"proximityWeight"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
