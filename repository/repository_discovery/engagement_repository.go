package repository_discovery

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
)

type engagementRepository struct {
	db         mongo.Database
	collection string
}

func NewEngagementRepository(db mongo.Database, collection string) discovery_interface.EngagementRepository {
	return &engagementRepository{
		db:         db,
		collection: collection,
	}
}

func (r *engagementRepository) GetAll(ctx context.Context) ([]discovery_models.EngagementMetrics, error) {
	cursor, err := r.db.Collection(r.collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("查询互动指标失败: %w", err)
	}
	defer cursor.Close(ctx)

	var metrics []discovery_models.EngagementMetrics
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, fmt.Errorf("解码互动指标失败: %w", err)
	}
	return metrics, nil
}

// ApplyTrendingUpdates 趋势批处理回写，单次BulkWrite提交全部更新
func (r *engagementRepository) ApplyTrendingUpdates(
	ctx context.Context,
	updates []discovery_models.TrendingUpdate,
) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	bulk := r.db.Collection(r.collection).BulkWrite()
	for _, u := range updates {
		model := driver.NewUpdateOneModel().
			SetFilter(bson.M{"item_id": u.ItemID}).
			SetUpdate(bson.M{"$set": bson.M{"trending_score": u.Score}})
		bulk.AddModel(model)
	}

	result, err := bulk.Execute(ctx)
	if err != nil {
		return 0, fmt.Errorf("批量回写趋势分数失败: %w", err)
	}
	return result.ModifiedCount(), nil
}
