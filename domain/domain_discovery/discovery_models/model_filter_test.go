package discovery_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Super-Badmen-Viper/NineTrip/util/textkey"
)

func filterTestItem() *ContentItem {
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	return &ContentItem{
		Kind:        ItemKindDeal,
		Title:       "Cherry Blossom Getaway",
		Description: "A week of hanami in Kyoto",
		Location:    "京都, 日本",
		Categories:  []string{"赏花", "文化"},
		Price:       320,
		StartDate:   &start,
		EndDate:     &end,
	}
}

func TestFilterNilMatchesEverything(t *testing.T) {
	var f *DiscoveryFilter
	assert.True(t, f.Matches(filterTestItem()))
	assert.True(t, (&DiscoveryFilter{}).Matches(filterTestItem()))
}

func TestFilterTypes(t *testing.T) {
	item := filterTestItem()
	assert.True(t, (&DiscoveryFilter{Types: []string{"deal"}}).Matches(item))
	assert.True(t, (&DiscoveryFilter{Types: []string{"DEAL"}}).Matches(item))
	assert.False(t, (&DiscoveryFilter{Types: []string{"itinerary", "user"}}).Matches(item))
}

func TestFilterCategories(t *testing.T) {
	item := filterTestItem()
	assert.True(t, (&DiscoveryFilter{Categories: []string{"文化"}}).Matches(item))
	assert.False(t, (&DiscoveryFilter{Categories: []string{"徒步"}}).Matches(item))
}

func TestFilterLocationSubstring(t *testing.T) {
	item := filterTestItem()
	assert.True(t, (&DiscoveryFilter{Location: "京都"}).Matches(item))
	assert.False(t, (&DiscoveryFilter{Location: "东京"}).Matches(item))
}

func TestFilterDateRangeIntersects(t *testing.T) {
	item := filterTestItem()

	overlapStart := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)
	assert.True(t, (&DiscoveryFilter{DateRange: &DateRange{Start: &overlapStart}}).Matches(item))

	afterEnd := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, (&DiscoveryFilter{DateRange: &DateRange{Start: &afterEnd}}).Matches(item))

	beforeStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, (&DiscoveryFilter{DateRange: &DateRange{End: &beforeStart}}).Matches(item))

	// 无日期的内容项不受日期约束排除
	undated := filterTestItem()
	undated.StartDate = nil
	undated.EndDate = nil
	assert.True(t, (&DiscoveryFilter{DateRange: &DateRange{Start: &afterEnd}}).Matches(undated))
}

func TestFilterPriceRangeOnlyForPricedKinds(t *testing.T) {
	item := filterTestItem()
	assert.True(t, (&DiscoveryFilter{PriceRange: &PriceRange{Min: 100, Max: 400}}).Matches(item))
	assert.False(t, (&DiscoveryFilter{PriceRange: &PriceRange{Min: 0, Max: 100}}).Matches(item))

	// 非计价内容忽略价格约束
	profile := filterTestItem()
	profile.Kind = ItemKindUser
	profile.Price = 0
	assert.True(t, (&DiscoveryFilter{PriceRange: &PriceRange{Min: 500, Max: 900}}).Matches(profile))
}

func TestFilterSearchQuery(t *testing.T) {
	item := filterTestItem()
	assert.True(t, (&DiscoveryFilter{SearchQuery: "blossom"}).Matches(item))
	assert.True(t, (&DiscoveryFilter{SearchQuery: "hanami"}).Matches(item))
	assert.True(t, (&DiscoveryFilter{SearchQuery: "京都"}).Matches(item))
	assert.False(t, (&DiscoveryFilter{SearchQuery: "sahara"}).Matches(item))
}

func TestFilterSearchQueryWidthFolded(t *testing.T) {
	item := filterTestItem()

	// 全角查询须命中半角存储的标题
	assert.True(t, (&DiscoveryFilter{SearchQuery: "ＢＬＯＳＳＯＭ"}).Matches(item))
}

func TestFilterSearchQueryPinyinKeys(t *testing.T) {
	item := filterTestItem()
	item.TitlePinyin = textkey.PinyinKeys("樱花之旅")
	item.LocationPinyin = textkey.PinyinKeys("京都")

	assert.True(t, (&DiscoveryFilter{SearchQuery: "jing"}).Matches(item))
	assert.True(t, (&DiscoveryFilter{SearchQuery: "ying hua"}).Matches(item))
	assert.False(t, (&DiscoveryFilter{SearchQuery: "shang hai"}).Matches(item))
}
