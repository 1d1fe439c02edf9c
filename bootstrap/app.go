package bootstrap

import (
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

func App() Application {
	app := Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)

	// 启动时确保索引就绪
	mongo.CreateIndexes(app.Mongo.Database(app.Env.DBName))

	return app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
