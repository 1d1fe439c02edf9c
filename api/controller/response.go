package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse 统一成功响应封装
func SuccessResponse(ctx *gin.Context, key string, data interface{}, total int) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		key:      data,
		"total":  total,
	})
}

// ErrorResponse 统一错误响应封装
func ErrorResponse(ctx *gin.Context, status int, code string, message string) {
	ctx.JSON(status, gin.H{
		"status":  "error",
		"code":    code,
		"message": message,
	})
}
