package discovery_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// ContentItemRepository 内容目录查询（已与互动指标联结）
type ContentItemRepository interface {
	// GetFiltered 按过滤条件获取公开内容项；filter 为 nil 表示无约束
	GetFiltered(ctx context.Context, filter *discovery_models.DiscoveryFilter) ([]discovery_models.CatalogEntry, error)

	// GetTrending 按 trending_score 降序获取内容项
	GetTrending(ctx context.Context, limit int) ([]discovery_models.CatalogEntry, error)

	// Upsert 写入内容项，同时生成拼音搜索键（目录服务的数据访问胶水）
	Upsert(ctx context.Context, item *discovery_models.ContentItem) error
}
