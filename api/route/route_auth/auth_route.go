package route_auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller/controller_auth"
	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
	"github.com/Super-Badmen-Viper/NineTrip/repository/repository_auth"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_auth"
)

func NewAuthRouter(
	timeout time.Duration,
	db mongo.Database,
	tokens usecase_auth.TokenConfig,
	group *gin.RouterGroup,
) {
	userRepo := repository_auth.NewUserRepository(db, domain.CollectionUser)
	authUsecase := usecase_auth.NewAuthUsecase(userRepo, tokens, timeout)
	authCtrl := controller_auth.NewAuthController(authUsecase)

	authGroup := group.Group("/auth")
	{
		// POST /auth/signup
		authGroup.POST("/signup", authCtrl.Signup)

		// POST /auth/login
		authGroup.POST("/login", authCtrl.Login)

		// POST /auth/refresh
		authGroup.POST("/refresh", authCtrl.RefreshToken)
	}
}
