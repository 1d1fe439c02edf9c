package repository_auth

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_models"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
	"github.com/Super-Badmen-Viper/NineTrip/repository"
)

var ErrUserNotFound = errors.New("用户不存在")

// userRepository 基于通用Mongo仓储的用户存取，叠加按邮箱查询和未找到语义
type userRepository struct {
	base domain.BaseRepository[auth_models.User]
}

func NewUserRepository(db mongo.Database, collection string) auth_interface.UserRepository {
	return &userRepository{
		base: repository.NewBaseMongoRepository[auth_models.User](db, collection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *auth_models.User) error {
	if err := r.base.Create(ctx, user); err != nil {
		return fmt.Errorf("创建用户失败: %w", err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*auth_models.User, error) {
	user, err := r.base.GetOneByFilter(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*auth_models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("无效的用户ID: %w", err)
	}

	user, err := r.base.GetOneByFilter(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
