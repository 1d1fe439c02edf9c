package repository_discovery

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
)

type behaviorRepository struct {
	db         mongo.Database
	collection string
}

func NewBehaviorRepository(db mongo.Database, collection string) discovery_interface.BehaviorRepository {
	return &behaviorRepository{
		db:         db,
		collection: collection,
	}
}

// GetByUserID 记录缺失返回 (nil, nil)，理由生成按无信号处理
func (r *behaviorRepository) GetByUserID(
	ctx context.Context,
	userID string,
) (*discovery_models.UserBehaviorSignals, error) {
	var behavior discovery_models.UserBehaviorSignals
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&behavior)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户行为数据失败: %w", err)
	}
	return &behavior, nil
}
