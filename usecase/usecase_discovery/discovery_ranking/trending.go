package discovery_ranking

import (
	"math"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// WilsonLowerBound 点赞率的 Wilson 95% 置信下界
// 原始点赞率对低流量内容噪声太大，Wilson 下界对小样本做保守惩罚
// views 为 0 时定义为 0，不产生除零
func WilsonLowerBound(likes, views int64, z float64) float64 {
	if views <= 0 {
		return 0
	}

	n := float64(views)
	p := float64(likes) / n
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	z2 := z * z
	denom := 1 + z2/n
	center := p + z2/(2*n)
	margin := z * math.Sqrt((p*(1-p)+z2/(4*n))/n)

	score := (center - margin) / denom
	return clamp01(score)
}

// TrendingScore 趋势分数: 0.7×Wilson下界 + 0.3×近因衰减
// 近因项 exp(-days/7) 防止趋势榜被旧爆款固化
func TrendingScore(m *discovery_models.EngagementMetrics, now time.Time) float64 {
	wilson := WilsonLowerBound(m.LikeCount, m.ViewCount, TrendingWilsonZ)

	days := now.Sub(m.UpdatedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	recency := math.Exp(-days / TrendingDecayDays)

	return TrendingWilsonWeight*wilson + TrendingRecencyWeight*recency
}
