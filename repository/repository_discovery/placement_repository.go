package repository_discovery

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
)

type placementRepository struct {
	db         mongo.Database
	collection string
}

func NewPlacementRepository(db mongo.Database, collection string) discovery_interface.PlacementRepository {
	return &placementRepository{
		db:         db,
		collection: collection,
	}
}

// GetBoosts 等级配置与用户持有记录联合解析为加成倍率表
// 未持有、未激活或已过期的发布者不出现在结果中
func (r *placementRepository) GetBoosts(
	ctx context.Context,
	ownerIDs []string,
) (map[string]float64, error) {
	boosts := make(map[string]float64, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return boosts, nil
	}

	config, err := r.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if config == nil || len(config.Tiers) == 0 {
		return boosts, nil
	}

	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{
		"user_id": bson.M{"$in": ownerIDs},
		"active":  true,
	})
	if err != nil {
		return nil, fmt.Errorf("查询推广等级持有记录失败: %w", err)
	}
	defer cursor.Close(ctx)

	var placements []discovery_models.UserPlacement
	if err := cursor.All(ctx, &placements); err != nil {
		return nil, fmt.Errorf("解码推广等级持有记录失败: %w", err)
	}

	now := time.Now()
	for _, p := range placements {
		if p.ExpiresAt != nil && p.ExpiresAt.Before(now) {
			continue
		}
		if boost := config.BoostForLevel(p.TierLevel); boost != 1.0 {
			boosts[p.UserID] = boost
		}
	}
	return boosts, nil
}

func (r *placementRepository) loadConfig(ctx context.Context) (*discovery_models.PlacementConfig, error) {
	cursor, err := r.db.Collection(domain.CollectionDiscoveryPlacementConfigs).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询推广等级配置失败: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return nil, nil
	}
	var config discovery_models.PlacementConfig
	if err := cursor.Decode(&config); err != nil {
		return nil, fmt.Errorf("解码推广等级配置失败: %w", err)
	}
	return &config, nil
}
