package route_discovery

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller/controller_discovery"
	"github.com/Super-Badmen-Viper/NineTrip/api/middleware"
	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/mongo"
	"github.com/Super-Badmen-Viper/NineTrip/repository"
	"github.com/Super-Badmen-Viper/NineTrip/repository/repository_discovery"
	"github.com/Super-Badmen-Viper/NineTrip/usecase"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_discovery"
)

func NewDiscoveryRouter(
	timeout time.Duration,
	db mongo.Database,
	accessTokenSecret string,
	group *gin.RouterGroup,
) {
	// 初始化repository
	catalogRepo := repository_discovery.NewContentItemRepository(db, domain.CollectionDiscoveryContentItem)
	engagementRepo := repository_discovery.NewEngagementRepository(db, domain.CollectionDiscoveryEngagement)
	prefsRepo := repository_discovery.NewPreferencesRepository(db, domain.CollectionDiscoveryUserPreferences)
	behaviorRepo := repository_discovery.NewBehaviorRepository(db, domain.CollectionDiscoveryUserBehavior)
	placementRepo := repository_discovery.NewPlacementRepository(db, domain.CollectionDiscoveryUserPlacement)
	rankingConfigRepo := repository.NewConfigMongoRepository[discovery_models.RankingConfig](db, domain.CollectionDiscoveryRankingConfigs)

	// 初始化usecase
	rankUsecase := usecase_discovery.NewRankUsecase(catalogRepo, prefsRepo, behaviorRepo, placementRepo, rankingConfigRepo, timeout)
	feedUsecase := usecase_discovery.NewFeedUsecase(catalogRepo, prefsRepo, behaviorRepo, placementRepo, rankingConfigRepo, timeout)
	trendingUsecase := usecase_discovery.NewTrendingUsecase(engagementRepo, catalogRepo, timeout)

	// 初始化controller
	discoveryCtrl := controller_discovery.NewDiscoveryController(rankUsecase, feedUsecase, trendingUsecase)

	// 注册路由：排序与信息流对匿名访客开放，携带令牌时启用个性化
	discoveryGroup := group.Group("/discovery")
	discoveryGroup.Use(middleware.OptionalJwtAuthMiddleware(accessTokenSecret))
	{
		// 多因子排序
		// GET /discovery/rank?offset=0&limit=20[&categories=x&types=deal&location=x&search=x&priceMin=0&priceMax=100&userLocation=x]
		discoveryGroup.GET("/rank", discoveryCtrl.Rank)

		// 七分区信息流
		// GET /discovery/feed?[userLocation=x&lat=40.7&lon=-74.0&...]
		discoveryGroup.GET("/feed", discoveryCtrl.Feed)

		// 趋势榜
		// GET /discovery/trending?limit=10
		discoveryGroup.GET("/trending", discoveryCtrl.GetTrending)
	}

	// 趋势批处理与权重配置需要认证
	configUsecase := usecase.NewConfigUsecase[discovery_models.RankingConfig](rankingConfigRepo, timeout)
	configCtrl := controller_discovery.NewRankingConfigController(configUsecase)

	adminGroup := group.Group("/discovery")
	adminGroup.Use(middleware.JwtAuthMiddleware(accessTokenSecret))
	{
		// POST /discovery/trending/refresh
		adminGroup.POST("/trending/refresh", discoveryCtrl.RefreshTrending)

		// 排序权重配置
		// GET  /discovery/config/ranking
		// PUT  /discovery/config/ranking
		adminGroup.GET("/config/ranking", configCtrl.Get)
		adminGroup.PUT("/config/ranking", configCtrl.Update)

		// 目录维护
		// POST   /discovery/items
		// GET    /discovery/items?page=1&pageSize=20
		// GET    /discovery/items/:id
		// DELETE /discovery/items/:id
		catalogUsecase := usecase_discovery.NewCatalogUsecase(catalogRepo, timeout)
		itemUsecase := usecase.NewBaseUsecase[discovery_models.ContentItem](
			repository.NewBaseMongoRepository[discovery_models.ContentItem](db, domain.CollectionDiscoveryContentItem),
			timeout,
		)
		itemCtrl := controller_discovery.NewContentItemController(catalogUsecase, itemUsecase)
		adminGroup.POST("/items", itemCtrl.Upsert)
		adminGroup.GET("/items", itemCtrl.List)
		adminGroup.GET("/items/:id", itemCtrl.GetByID)
		adminGroup.DELETE("/items/:id", itemCtrl.Delete)
	}
}
