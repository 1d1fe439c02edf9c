package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller"
	"github.com/Super-Badmen-Viper/NineTrip/util/tokenutil"
)

// JwtAuthMiddleware 校验 Authorization: Bearer <token> 并注入 x-user-id
func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "缺少认证令牌")
			ctx.Abort()
			return
		}

		token := parts[1]
		authorized, err := tokenutil.IsAuthorized(token, secret)
		if !authorized {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			ctx.Abort()
			return
		}

		userID, err := tokenutil.ExtractIDFromToken(token, secret)
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			ctx.Abort()
			return
		}

		ctx.Set("x-user-id", userID)
		ctx.Next()
	}
}

// OptionalJwtAuthMiddleware 携带有效令牌时注入 x-user-id，匿名请求照常放行
// 排序与信息流接口对匿名访客开放，使用中性评分
func OptionalJwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if userID, err := tokenutil.ExtractIDFromToken(parts[1], secret); err == nil {
				ctx.Set("x-user-id", userID)
			}
		}
		ctx.Next()
	}
}
