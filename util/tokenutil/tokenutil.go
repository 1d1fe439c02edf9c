package tokenutil

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_models"
)

// JwtCustomClaims 访问令牌负载
type JwtCustomClaims struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	jwt.RegisteredClaims
}

// JwtCustomRefreshClaims 刷新令牌负载
type JwtCustomRefreshClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

func CreateAccessToken(user *auth_models.User, secret string, expiryHours int) (string, error) {
	claims := &JwtCustomClaims{
		Name: user.Name,
		ID:   user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expiryHours))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("签发访问令牌失败: %w", err)
	}
	return signed, nil
}

func CreateRefreshToken(user *auth_models.User, secret string, expiryHours int) (string, error) {
	claims := &JwtCustomRefreshClaims{
		ID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(expiryHours))),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("签发刷新令牌失败: %w", err)
	}
	return signed, nil
}

// IsAuthorized 校验令牌签名与有效期
func IsAuthorized(tokenString, secret string) (bool, error) {
	_, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名算法: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExtractIDFromToken 从已验证的令牌中取出用户ID
func ExtractIDFromToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名算法: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("无效的令牌")
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("令牌缺少用户ID")
	}
	return id, nil
}
