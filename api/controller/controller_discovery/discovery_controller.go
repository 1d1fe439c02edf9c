package controller_discovery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Super-Badmen-Viper/NineTrip/api/controller"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

type DiscoveryController struct {
	rankUsecase     discovery_interface.DiscoveryRankRepository
	feedUsecase     discovery_interface.DiscoveryFeedRepository
	trendingUsecase discovery_interface.TrendingRefreshRepository
}

func NewDiscoveryController(
	rankUsecase discovery_interface.DiscoveryRankRepository,
	feedUsecase discovery_interface.DiscoveryFeedRepository,
	trendingUsecase discovery_interface.TrendingRefreshRepository,
) *DiscoveryController {
	return &DiscoveryController{
		rankUsecase:     rankUsecase,
		feedUsecase:     feedUsecase,
		trendingUsecase: trendingUsecase,
	}
}

// parseFilter 从查询参数组装过滤条件
// categories/types 支持重复参数，价格与日期范围成对出现才生效
func parseFilter(ctx *gin.Context) *discovery_models.DiscoveryFilter {
	filter := &discovery_models.DiscoveryFilter{
		Categories:  ctx.QueryArray("categories"),
		Types:       ctx.QueryArray("types"),
		Location:    ctx.Query("location"),
		SearchQuery: ctx.Query("search"),
	}

	if minStr, maxStr := ctx.Query("priceMin"), ctx.Query("priceMax"); minStr != "" || maxStr != "" {
		min, _ := strconv.ParseFloat(minStr, 64)
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			max = float64(1<<53 - 1)
		}
		filter.PriceRange = &discovery_models.PriceRange{Min: min, Max: max}
	}

	dateRange := &discovery_models.DateRange{}
	if start, err := time.Parse(time.RFC3339, ctx.Query("dateStart")); err == nil {
		dateRange.Start = &start
	}
	if end, err := time.Parse(time.RFC3339, ctx.Query("dateEnd")); err == nil {
		dateRange.End = &end
	}
	if dateRange.Start != nil || dateRange.End != nil {
		filter.DateRange = dateRange
	}

	return filter
}

func parseGeo(ctx *gin.Context) *discovery_models.GeoPoint {
	latStr, lonStr := ctx.Query("lat"), ctx.Query("lon")
	if latStr == "" || lonStr == "" {
		return nil
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		return nil
	}
	return &discovery_models.GeoPoint{Latitude: lat, Longitude: lon}
}

func (c *DiscoveryController) Rank(ctx *gin.Context) {
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", "limit参数必须大于0")
		return
	}

	items, err := c.rankUsecase.Rank(
		ctx,
		ctx.GetString("x-user-id"),
		ctx.Query("userLocation"),
		parseFilter(ctx),
		offset,
		limit,
	)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "items", items, len(items))
}

func (c *DiscoveryController) Feed(ctx *gin.Context) {
	feed, err := c.feedUsecase.BuildFeed(
		ctx,
		ctx.GetString("x-user-id"),
		ctx.Query("userLocation"),
		parseGeo(ctx),
		parseFilter(ctx),
	)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, feed)
}

func (c *DiscoveryController) RefreshTrending(ctx *gin.Context) {
	result, err := c.trendingUsecase.RefreshTrending(ctx)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *DiscoveryController) GetTrending(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	entries, err := c.trendingUsecase.GetTrending(ctx, limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SERVER_ERROR", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "items", entries, len(entries))
}
