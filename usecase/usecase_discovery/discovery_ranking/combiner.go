package discovery_ranking

import (
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// CombineScore 因子分数的加权线性组合，加成前结果位于 [0,1]
func CombineScore(f discovery_models.FactorScores, w FactorWeights) float64 {
	return w.Relevance*f.Relevance +
		w.Popularity*f.Popularity +
		w.Freshness*f.Freshness +
		w.Quality*f.Quality +
		w.Proximity*f.Proximity
}

// ApplyPlacementBoost 组合后应用推广等级乘法加成
// 加成后的分数可能超过 1，调用方不得假设其有界
func ApplyPlacementBoost(score, boost float64) float64 {
	if boost <= 0 {
		return score
	}
	return score * boost
}
