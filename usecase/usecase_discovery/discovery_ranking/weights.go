package discovery_ranking

import (
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// FactorWeights 五因子组合权重，五项之和必须为 1.0
type FactorWeights struct {
	Relevance  float64
	Popularity float64
	Freshness  float64
	Quality    float64
	Proximity  float64
}

// DefaultFactorWeights 默认组合权重
func DefaultFactorWeights() FactorWeights {
	return FactorWeights{
		Relevance:  0.40,
		Popularity: 0.25,
		Freshness:  0.15,
		Quality:    0.15,
		Proximity:  0.05,
	}
}

func (w FactorWeights) Sum() float64 {
	return w.Relevance + w.Popularity + w.Freshness + w.Quality + w.Proximity
}

// FactorWeightsFromConfig 从配置文档读取权重；配置缺失或权重之和不为 1 时回退默认值
func FactorWeightsFromConfig(cfg *discovery_models.RankingConfig) FactorWeights {
	if cfg == nil {
		return DefaultFactorWeights()
	}
	w := FactorWeights{
		Relevance:  cfg.RelevanceWeight,
		Popularity: cfg.PopularityWeight,
		Freshness:  cfg.FreshnessWeight,
		Quality:    cfg.QualityWeight,
		Proximity:  cfg.ProximityWeight,
	}
	if s := w.Sum(); s < 0.999 || s > 1.001 {
		return DefaultFactorWeights()
	}
	return w
}

// 相关性因子常量
const (
	RelevanceBase             = 0.5 // 无偏好数据时的中性基准
	RelevanceDestinationBonus = 0.2 // 位置命中偏好目的地
	RelevanceCategoryBonus    = 0.2 // 分类交集比例的满分加成
	RelevanceStyleBonus       = 0.1 // 旅行风格相符
)

// 热度因子常量：加权互动计数过 log10 压缩，防止单个爆款刷满量表
const (
	PopularityViewWeight    = 1.0
	PopularitySaveWeight    = 5.0
	PopularityLikeWeight    = 3.0
	PopularityCommentWeight = 4.0
	PopularityShareWeight   = 7.0
	PopularityLogScale      = 4.0
	PopularityDefault       = 0.3 // 指标缺失时的默认值
)

// FreshnessDecayDays 新鲜度指数衰减的时间常数（天）
const FreshnessDecayDays = 30.0

// 质量因子常量
const (
	QualityCompletenessWeight = 0.6
	QualityRatingWeight       = 0.4
	QualityDefaultRating      = 0.5 // 无评分时的归一化默认值
)

// ProximityNeutral 位置未知时的中性邻近度
const ProximityNeutral = 0.5

// 趋势估计常量
const (
	TrendingWilsonZ       = 1.96 // 95% 置信水平
	TrendingWilsonWeight  = 0.7
	TrendingRecencyWeight = 0.3
	TrendingDecayDays     = 7.0
)

// 推荐理由权重
const (
	ReasonWeightLiked    = 1.0
	ReasonWeightSearched = 0.8
	ReasonWeightFriend   = 0.7
	ReasonWeightFollowed = 0.6
	ReasonWeightLocation = 0.6
	ReasonWeightViewed   = 0.5
	ReasonWeightTrending = 0.4
	ReasonWeightSeasonal = 0.5
	ReasonWeightFallback = 0.3
)

// LocationReasonRadiusKm 位置理由的大圆距离阈值（公里）
const LocationReasonRadiusKm = 50.0

// 理由加法分数常量
const (
	ReasonRecencyFactor    = 0.8
	ReasonRecencyScale     = 10.0
	ReasonPopularityScale  = 5.0
)

// ReasonBasePoints 各理由来源的固定基准分
var ReasonBasePoints = map[string]float64{
	discovery_models.ReasonSourceLiked:    10,
	discovery_models.ReasonSourceSearched: 8,
	discovery_models.ReasonSourceFriend:   7,
	discovery_models.ReasonSourceFollowed: 6,
	discovery_models.ReasonSourceLocation: 6,
	discovery_models.ReasonSourceViewed:   5,
	discovery_models.ReasonSourceTrending: 4,
	discovery_models.ReasonSourceSeasonal: 3,
}

// 多样性重排常量
const (
	DiversityUniqueSlots = 10 // 头部唯一性约束槽位
	DiversityMaxTotal    = 20 // 回填后的总上限
)

// 分区容量
const (
	SectionLimitPersonal = 5
	SectionLimitDefault  = 10
)
