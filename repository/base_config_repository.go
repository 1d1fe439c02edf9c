package repository

import (
	"context"
	"fmt"
	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

// ConfigMongoRepository 配置类MongoDB Repository实现
type ConfigMongoRepository[T any] struct {
	*BaseMongoRepository[T]
}

// NewConfigMongoRepository 创建新的配置Repository实例
func NewConfigMongoRepository[T any](db mongo.Database, collection string) domain.ConfigRepository[T] {
	baseRepo := &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
	return &ConfigMongoRepository[T]{
		BaseMongoRepository: baseRepo,
	}
}

// Get 获取配置（单例模式，获取第一个配置）
func (r *ConfigMongoRepository[T]) Get(ctx context.Context) (*T, error) {
	coll := r.db.Collection(r.collection)
	var config T
	err := coll.FindOne(ctx, bson.M{}).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("configuration not found: %w", err)
	}
	return &config, nil
}

// GetAll 获取所有配置
func (r *ConfigMongoRepository[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.BaseMongoRepository.GetAll(ctx)
}

// ReplaceAll 替换所有配置（非事务模式）
func (r *ConfigMongoRepository[T]) ReplaceAll(ctx context.Context, configs []*T) error {
	// 获取集合句柄
	coll := r.db.Collection(r.collection)

	// 如果没有新配置
	if len(configs) == 0 {
		// 删除所有现有配置
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("failed to delete existing configs: %w", err)
		}
		return nil
	}

	// 1. 删除所有现有配置
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete existing configs: %w", err)
	}

	// 2. 准备插入文档
	docs := make([]interface{}, len(configs))
	for i, config := range configs {
		r.setTimestamps(config, true) // 设置时间戳
		docs[i] = config
	}

	// 3. 插入新配置
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert new configs: %w", err)
	}

	return nil
}
