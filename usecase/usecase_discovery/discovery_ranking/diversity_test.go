package discovery_ranking

import (
	"fmt"
	"testing"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredItem(score float64, category, location string) discovery_models.ScoredItem {
	return discovery_models.ScoredItem{
		Item: discovery_models.ContentItem{
			Categories: []string{category},
			Location:   location,
		},
		Score: score,
	}
}

func TestDiversify_UniqueHead(t *testing.T) {
	// 高分项全部来自同一分类同一地点
	items := make([]discovery_models.ScoredItem, 0, 15)
	for i := 0; i < 5; i++ {
		items = append(items, scoredItem(1.0-float64(i)*0.01, "food", "Tokyo"))
	}
	for i := 0; i < 10; i++ {
		items = append(items, scoredItem(0.5-float64(i)*0.01, fmt.Sprintf("cat-%d", i), fmt.Sprintf("loc-%d", i)))
	}

	result := Diversify(items)

	// 头部10个槽位不允许重复分类/地点：food/Tokyo 只进一个
	seenCategories := map[string]int{}
	for _, it := range result[:10] {
		seenCategories[it.Item.PrimaryCategory()]++
	}
	assert.Equal(t, 1, seenCategories["food"])

	// 其余 food 项被回填到尾部
	assert.Len(t, result, 15)
}

func TestDiversify_BackfillKeepsScoreOrder(t *testing.T) {
	items := []discovery_models.ScoredItem{
		scoredItem(0.9, "food", "Tokyo"),
		scoredItem(0.8, "food", "Tokyo"),
		scoredItem(0.7, "hiking", "Osaka"),
	}
	result := Diversify(items)

	require.Len(t, result, 3)
	assert.Equal(t, 0.9, result[0].Score)
	assert.Equal(t, 0.7, result[1].Score) // 唯一性约束把重复的 0.8 挤到回填区
	assert.Equal(t, 0.8, result[2].Score)
}

func TestDiversify_TruncatesAtMaxTotal(t *testing.T) {
	items := make([]discovery_models.ScoredItem, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, scoredItem(1.0-float64(i)*0.01, "food", "Tokyo"))
	}
	result := Diversify(items)
	assert.Len(t, result, DiversityMaxTotal)
}

func TestDiversify_EmptyFieldsDoNotBlock(t *testing.T) {
	items := []discovery_models.ScoredItem{
		scoredItem(0.9, "", ""),
		scoredItem(0.8, "", ""),
		scoredItem(0.7, "", ""),
	}
	result := Diversify(items)

	// 空分类/空位置不参与唯一性约束，顺序保持分数降序
	require.Len(t, result, 3)
	assert.Equal(t, 0.9, result[0].Score)
	assert.Equal(t, 0.8, result[1].Score)
	assert.Equal(t, 0.7, result[2].Score)
}

func TestDiversify_SmallInput(t *testing.T) {
	assert.Empty(t, Diversify(nil))
	one := []discovery_models.ScoredItem{scoredItem(0.5, "food", "Tokyo")}
	assert.Len(t, Diversify(one), 1)
}
