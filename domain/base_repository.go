package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository 通用Repository接口，提供标准CRUD操作
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	// 基础CRUD操作
	Create(ctx context.Context, entity *T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// 查询操作
	GetAll(ctx context.Context) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// 分页查询
	GetPaginated(ctx context.Context, filter interface{}, skip, limit int64) ([]*T, error)
}

// ConfigRepository 配置类Repository接口，适用于系统配置等场景
// T: 配置实体类型
type ConfigRepository[T any] interface {
	// 配置操作
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, config *T) error

	// 批量配置操作（适用于多配置项场景）
	GetAll(ctx context.Context) ([]*T, error)
	ReplaceAll(ctx context.Context, configs []*T) error
}
