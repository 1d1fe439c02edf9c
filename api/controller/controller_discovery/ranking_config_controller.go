package controller_discovery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/usecase"
)

// RankingConfigController 排序权重配置的运维接口
type RankingConfigController struct {
	configUsecase usecase.ConfigUsecase[discovery_models.RankingConfig]
}

func NewRankingConfigController(
	configUsecase usecase.ConfigUsecase[discovery_models.RankingConfig],
) *RankingConfigController {
	return &RankingConfigController{configUsecase: configUsecase}
}

func (c *RankingConfigController) Get(ctx *gin.Context) {
	config, err := c.configUsecase.Get(ctx)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "CONFIG_NOT_FOUND", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, config)
}

func (c *RankingConfigController) Update(ctx *gin.Context) {
	var config discovery_models.RankingConfig
	if err := ctx.ShouldBindJSON(&config); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	sum := config.RelevanceWeight + config.PopularityWeight + config.FreshnessWeight +
		config.QualityWeight + config.ProximityWeight
	if sum < 0.999 || sum > 1.001 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "五项权重之和必须为1.0")
		return
	}

	// 单例配置文档：沿用已有文档的ID，首次写入时生成新ID
	if config.ID.IsZero() {
		if existing, err := c.configUsecase.Get(ctx); err == nil && existing != nil {
			config.ID = existing.ID
		} else {
			config.ID = primitive.NewObjectID()
		}
	}

	if err := c.configUsecase.Update(ctx, &config); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}
	ctx.JSON(http.StatusOK, config)
}
