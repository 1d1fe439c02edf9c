package discovery_ranking

import (
	"testing"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/stretchr/testify/assert"
)

func TestDefaultFactorWeights_SumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, DefaultFactorWeights().Sum(), 1e-9)
}

func TestCombineScore_Bounds(t *testing.T) {
	w := DefaultFactorWeights()

	zero := discovery_models.FactorScores{}
	assert.Equal(t, 0.0, CombineScore(zero, w))

	full := discovery_models.FactorScores{Relevance: 1, Popularity: 1, Freshness: 1, Quality: 1, Proximity: 1}
	assert.InDelta(t, 1.0, CombineScore(full, w), 1e-9)
}

func TestCombineScore_WeightedMix(t *testing.T) {
	w := DefaultFactorWeights()
	f := discovery_models.FactorScores{
		Relevance:  0.5,
		Popularity: 0.8,
		Freshness:  1.0,
		Quality:    0.6,
		Proximity:  0.5,
	}
	// 0.4×0.5 + 0.25×0.8 + 0.15×1.0 + 0.15×0.6 + 0.05×0.5
	assert.InDelta(t, 0.665, CombineScore(f, w), 1e-9)
}

func TestApplyPlacementBoost(t *testing.T) {
	// 加成后可以超过 1
	assert.InDelta(t, 1.2, ApplyPlacementBoost(0.8, 1.5), 1e-9)
	// 无效加成不改变分数
	assert.Equal(t, 0.8, ApplyPlacementBoost(0.8, 0))
	assert.Equal(t, 0.8, ApplyPlacementBoost(0.8, -1))
}

func TestFactorWeightsFromConfig(t *testing.T) {
	assert.Equal(t, DefaultFactorWeights(), FactorWeightsFromConfig(nil))

	// 权重之和不为 1 时回退默认
	bad := &discovery_models.RankingConfig{RelevanceWeight: 0.9, PopularityWeight: 0.9}
	assert.Equal(t, DefaultFactorWeights(), FactorWeightsFromConfig(bad))

	good := &discovery_models.RankingConfig{
		RelevanceWeight:  0.3,
		PopularityWeight: 0.3,
		FreshnessWeight:  0.2,
		QualityWeight:    0.1,
		ProximityWeight:  0.1,
	}
	assert.Equal(t, 0.3, FactorWeightsFromConfig(good).Relevance)
}
