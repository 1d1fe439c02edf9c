package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/route/route_auth"
	"github.com/Super-Badmen-Viper/NineTrip/api/route/route_discovery"
	"github.com/Super-Badmen-Viper/NineTrip/bootstrap"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_auth"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, gin *gin.Engine) {
	publicRouter := gin.Group("")

	tokens := usecase_auth.TokenConfig{
		AccessTokenSecret:      env.AccessTokenSecret,
		RefreshTokenSecret:     env.RefreshTokenSecret,
		AccessTokenExpiryHour:  env.AccessTokenExpiryHour,
		RefreshTokenExpiryHour: env.RefreshTokenExpiryHour,
	}

	route_auth.NewAuthRouter(timeout, db, tokens, publicRouter)
	route_discovery.NewDiscoveryRouter(timeout, db, env.AccessTokenSecret, publicRouter)
}
