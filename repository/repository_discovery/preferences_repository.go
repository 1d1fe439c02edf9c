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

type preferencesRepository struct {
	db         mongo.Database
	collection string
}

func NewPreferencesRepository(db mongo.Database, collection string) discovery_interface.PreferencesRepository {
	return &preferencesRepository{
		db:         db,
		collection: collection,
	}
}

// GetByUserID 记录缺失返回 (nil, nil)，评分侧回退中性值
func (r *preferencesRepository) GetByUserID(
	ctx context.Context,
	userID string,
) (*discovery_models.UserPreferences, error) {
	var prefs discovery_models.UserPreferences
	err := r.db.Collection(r.collection).FindOne(ctx, bson.M{"user_id": userID}).Decode(&prefs)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户偏好失败: %w", err)
	}
	return &prefs, nil
}
