package usecase_auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_models"
	"github.com/Super-Badmen-Viper/NineTrip/repository/repository_auth"
	"github.com/Super-Badmen-Viper/NineTrip/util/tokenutil"
)

var ErrInvalidCredentials = errors.New("邮箱或密码错误")
var ErrEmailTaken = errors.New("该邮箱已被注册")

// TokenConfig 令牌签发参数，来自应用配置
type TokenConfig struct {
	AccessTokenSecret      string
	RefreshTokenSecret     string
	AccessTokenExpiryHour  int
	RefreshTokenExpiryHour int
}

type authUsecase struct {
	userRepo auth_interface.UserRepository
	tokens   TokenConfig
	timeout  time.Duration
}

func NewAuthUsecase(
	userRepo auth_interface.UserRepository,
	tokens TokenConfig,
	timeout time.Duration,
) auth_interface.AuthRepository {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		timeout:  timeout,
	}
}

func (uc *authUsecase) Signup(
	ctx context.Context,
	request *auth_models.SignupRequest,
) (*auth_models.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	_, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository_auth.ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %w", err)
	}

	user := &auth_models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: string(hashed),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return uc.issueTokens(user)
}

func (uc *authUsecase) Login(
	ctx context.Context,
	request *auth_models.LoginRequest,
) (*auth_models.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	user, err := uc.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, repository_auth.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return uc.issueTokens(user)
}

func (uc *authUsecase) RefreshToken(
	ctx context.Context,
	request *auth_models.RefreshTokenRequest,
) (*auth_models.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	id, err := tokenutil.ExtractIDFromToken(request.RefreshToken, uc.tokens.RefreshTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("刷新令牌无效: %w", err)
	}

	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.issueTokens(user)
}

func (uc *authUsecase) issueTokens(user *auth_models.User) (*auth_models.AuthResponse, error) {
	accessToken, err := tokenutil.CreateAccessToken(user, uc.tokens.AccessTokenSecret, uc.tokens.AccessTokenExpiryHour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := tokenutil.CreateRefreshToken(user, uc.tokens.RefreshTokenSecret, uc.tokens.RefreshTokenExpiryHour)
	if err != nil {
		return nil, err
	}
	return &auth_models.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
