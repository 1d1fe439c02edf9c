package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseUsecase 通用Usecase接口，承载资源的运维读写面
type BaseUsecase[T any] interface {
	GetByID(ctx context.Context, id string) (*T, error)
	Delete(ctx context.Context, id string) error
	GetPaginated(ctx context.Context, page, pageSize int) ([]*T, int64, error)
}

// ConfigUsecase 配置类Usecase接口
type ConfigUsecase[T any] interface {
	Get(ctx context.Context) (*T, error)
	Update(ctx context.Context, config *T) error
	GetAll(ctx context.Context) ([]*T, error)
	ReplaceAll(ctx context.Context, configs []*T) error
}

// BaseUsecaseImpl 通用Usecase实现
type BaseUsecaseImpl[T any] struct {
	repo    domain.BaseRepository[T]
	timeout time.Duration
}

// NewBaseUsecase 创建通用Usecase实例
func NewBaseUsecase[T any](repo domain.BaseRepository[T], timeout time.Duration) BaseUsecase[T] {
	return &BaseUsecaseImpl[T]{
		repo:    repo,
		timeout: timeout,
	}
}

// GetByID 根据ID获取实体
func (uc *BaseUsecaseImpl[T]) GetByID(ctx context.Context, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid id format: %w", err)
	}

	entity, err := uc.repo.GetByID(ctx, objID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return entity, nil
}

// Delete 删除实体
func (uc *BaseUsecaseImpl[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if id == "" {
		return errors.New("id cannot be empty")
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid id format: %w", err)
	}

	if err := uc.repo.Delete(ctx, objID); err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

// GetPaginated 分页获取实体
func (uc *BaseUsecaseImpl[T]) GetPaginated(ctx context.Context, page, pageSize int) ([]*T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	skip := int64((page - 1) * pageSize)
	limit := int64(pageSize)

	entities, err := uc.repo.GetPaginated(ctx, bson.M{}, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get paginated entities: %w", err)
	}

	total, err := uc.repo.Count(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count entities: %w", err)
	}

	return entities, total, nil
}

// ConfigUsecaseImpl 配置类Usecase实现
type ConfigUsecaseImpl[T any] struct {
	repo    domain.ConfigRepository[T]
	timeout time.Duration
}

// NewConfigUsecase 创建配置Usecase实例
func NewConfigUsecase[T any](repo domain.ConfigRepository[T], timeout time.Duration) ConfigUsecase[T] {
	return &ConfigUsecaseImpl[T]{
		repo:    repo,
		timeout: timeout,
	}
}

// Get 获取配置
func (uc *ConfigUsecaseImpl[T]) Get(ctx context.Context) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	config, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get config: %w", err)
	}

	return config, nil
}

// Update 更新配置
func (uc *ConfigUsecaseImpl[T]) Update(ctx context.Context, config *T) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if config == nil {
		return errors.New("config cannot be nil")
	}

	if err := uc.repo.Update(ctx, config); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}

	return nil
}

// GetAll 获取所有配置
func (uc *ConfigUsecaseImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	configs, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get configs: %w", err)
	}

	return configs, nil
}

// ReplaceAll 替换所有配置
func (uc *ConfigUsecaseImpl[T]) ReplaceAll(ctx context.Context, configs []*T) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if configs == nil {
		return errors.New("configs cannot be nil")
	}

	if err := uc.repo.ReplaceAll(ctx, configs); err != nil {
		return fmt.Errorf("failed to replace configs: %w", err)
	}

	return nil
}
