package usecase_auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_models"
	"github.com/Super-Badmen-Viper/NineTrip/repository/repository_auth"
)

type fakeUserRepo struct {
	users map[string]*auth_models.User // email -> user
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*auth_models.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *auth_models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*auth_models.User, error) {
	if user, ok := f.users[email]; ok {
		return user, nil
	}
	return nil, repository_auth.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*auth_models.User, error) {
	for _, user := range f.users {
		if user.ID.Hex() == id {
			return user, nil
		}
	}
	return nil, repository_auth.ErrUserNotFound
}

var testTokens = TokenConfig{
	AccessTokenSecret:      "access-secret",
	RefreshTokenSecret:     "refresh-secret",
	AccessTokenExpiryHour:  2,
	RefreshTokenExpiryHour: 168,
}

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testTokens, 5*time.Second)

	signup := &auth_models.SignupRequest{Name: "旅行者", Email: "t@example.com", Password: "password123"}
	response, err := uc.Signup(context.Background(), signup)
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)

	// 密码以bcrypt哈希存储
	stored := repo.users["t@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("password123")))

	login, err := uc.Login(context.Background(), &auth_models.LoginRequest{Email: "t@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testTokens, 5*time.Second)

	signup := &auth_models.SignupRequest{Name: "旅行者", Email: "t@example.com", Password: "password123"}
	_, err := uc.Signup(context.Background(), signup)
	require.NoError(t, err)

	_, err = uc.Signup(context.Background(), signup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testTokens, 5*time.Second)

	_, err := uc.Signup(context.Background(), &auth_models.SignupRequest{Name: "旅行者", Email: "t@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), &auth_models.LoginRequest{Email: "t@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), &auth_models.LoginRequest{Email: "missing@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testTokens, 5*time.Second)

	response, err := uc.Signup(context.Background(), &auth_models.SignupRequest{Name: "旅行者", Email: "t@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(context.Background(), &auth_models.RefreshTokenRequest{RefreshToken: response.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = uc.RefreshToken(context.Background(), &auth_models.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.Error(t, err)
}
