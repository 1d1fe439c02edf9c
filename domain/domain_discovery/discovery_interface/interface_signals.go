package discovery_interface

import (
	"context"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// PreferencesRepository 用户偏好只读视图
// 记录缺失返回 (nil, nil)，调用方回退到中性评分
type PreferencesRepository interface {
	GetByUserID(ctx context.Context, userID string) (*discovery_models.UserPreferences, error)
}

// BehaviorRepository 用户行为信号只读视图
// 记录缺失返回 (nil, nil)
type BehaviorRepository interface {
	GetByUserID(ctx context.Context, userID string) (*discovery_models.UserBehaviorSignals, error)
}

// EngagementRepository 互动指标视图；趋势批处理通过 ApplyTrendingUpdates 回写
type EngagementRepository interface {
	GetAll(ctx context.Context) ([]discovery_models.EngagementMetrics, error)

	// ApplyTrendingUpdates 批量回写趋势分数，返回实际修改的文档数
	ApplyTrendingUpdates(ctx context.Context, updates []discovery_models.TrendingUpdate) (int64, error)
}
