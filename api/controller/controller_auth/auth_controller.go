package controller_auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_auth/auth_models"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_auth"
)

type AuthController struct {
	authUsecase auth_interface.AuthRepository
}

func NewAuthController(authUsecase auth_interface.AuthRepository) *AuthController {
	return &AuthController{authUsecase: authUsecase}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var request auth_models.SignupRequest
	if err := ctx.ShouldBind(&request); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	response, err := c.authUsecase.Signup(ctx, &request)
	if err != nil {
		if errors.Is(err, usecase_auth.ErrEmailTaken) {
			controller.ErrorResponse(ctx, http.StatusConflict, "EMAIL_TAKEN", err.Error())
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *AuthController) Login(ctx *gin.Context) {
	var request auth_models.LoginRequest
	if err := ctx.ShouldBind(&request); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	response, err := c.authUsecase.Login(ctx, &request)
	if err != nil {
		if errors.Is(err, usecase_auth.ErrInvalidCredentials) {
			controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
			return
		}
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var request auth_models.RefreshTokenRequest
	if err := ctx.ShouldBind(&request); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	response, err := c.authUsecase.RefreshToken(ctx, &request)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, response)
}
