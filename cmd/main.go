package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/route"
	"github.com/Super-Badmen-Viper/NineTrip/bootstrap"
)

func main() {
	app := bootstrap.App()
	env := app.Env
	defer app.CloseDBConnection()

	db := app.Mongo.Database(env.DBName)
	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
