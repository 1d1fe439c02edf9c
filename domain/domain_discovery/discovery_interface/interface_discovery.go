package discovery_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// DiscoveryRankRepository 多因子排序入口
type DiscoveryRankRepository interface {
	// Rank 过滤、评分、排序、多样性重排后按 offset/limit 分页返回
	// userID 为空表示匿名访客，使用中性评分；userLocation 为请求方位置文本（可为空）
	Rank(
		ctx context.Context,
		userID string,
		userLocation string,
		filter *discovery_models.DiscoveryFilter,
		offset, limit int,
	) ([]discovery_models.ScoredItem, error)
}

// DiscoveryFeedRepository 七分区信息流组装入口
type DiscoveryFeedRepository interface {
	// BuildFeed userLocation 为请求方位置文本，userGeo 为请求方坐标，均可为空
	BuildFeed(
		ctx context.Context,
		userID string,
		userLocation string,
		userGeo *discovery_models.GeoPoint,
		filter *discovery_models.DiscoveryFilter,
	) (*discovery_models.DiscoveryFeed, error)
}

// TrendingRefreshRepository 趋势分数批处理及查询入口
type TrendingRefreshRepository interface {
	// RefreshTrending 遍历全部互动指标，计算并回写趋势分数
	RefreshTrending(ctx context.Context) (*discovery_models.TrendingRefreshResult, error)

	// GetTrending 按已回写的趋势分数降序返回内容项
	GetTrending(ctx context.Context, limit int) ([]discovery_models.CatalogEntry, error)
}
