package auth_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_models"
)

// UserRepository 用户账户存取
type UserRepository interface {
	Create(ctx context.Context, user *auth_models.User) error
	GetByEmail(ctx context.Context, email string) (*auth_models.User, error)
	GetByID(ctx context.Context, id string) (*auth_models.User, error)
}

// AuthRepository 认证业务入口
type AuthRepository interface {
	Signup(ctx context.Context, request *auth_models.SignupRequest) (*auth_models.AuthResponse, error)
	Login(ctx context.Context, request *auth_models.LoginRequest) (*auth_models.AuthResponse, error)
	RefreshToken(ctx context.Context, request *auth_models.RefreshTokenRequest) (*auth_models.AuthResponse, error)
}
