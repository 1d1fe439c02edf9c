package discovery_models

import (
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/util/textkey"
)

// DateRange 日期范围约束（两端均可选）
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// PriceRange 价格范围约束 [Min, Max]
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DiscoveryFilter 目录过滤条件，所有字段可选，缺失表示无约束
type DiscoveryFilter struct {
	Categories  []string    `form:"categories" json:"categories,omitempty"`   // 分类白名单
	Location    string      `form:"location" json:"location,omitempty"`       // 位置子串匹配
	DateRange   *DateRange  `json:"dateRange,omitempty"`                      // 日期范围
	SearchQuery string      `form:"search" json:"searchQuery,omitempty"`      // 标题/描述/位置全文检索
	PriceRange  *PriceRange `json:"priceRange,omitempty"`                     // 价格范围（仅计价内容）
	Types       []string    `form:"types" json:"types,omitempty"`             // 内容类型白名单
}

// Matches 判断内容项是否满足全部过滤条件
// 作为组合器评分前的权威过滤；仓储层的数据库端过滤只做粗筛
func (f *DiscoveryFilter) Matches(item *ContentItem) bool {
	if f == nil {
		return true
	}

	if len(f.Types) > 0 && !containsFold(f.Types, item.Kind) {
		return false
	}

	if len(f.Categories) > 0 {
		matched := false
		for _, c := range item.Categories {
			if containsFold(f.Categories, c) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.Location != "" && !strings.Contains(strings.ToLower(item.Location), strings.ToLower(f.Location)) {
		return false
	}

	if f.DateRange != nil {
		// 日期窗口须与过滤范围相交；无日期的内容项不受日期约束排除
		if f.DateRange.Start != nil && item.EndDate != nil && item.EndDate.Before(*f.DateRange.Start) {
			return false
		}
		if f.DateRange.End != nil && item.StartDate != nil && item.StartDate.After(*f.DateRange.End) {
			return false
		}
	}

	if f.PriceRange != nil && pricedKind(item.Kind) {
		if item.Price < f.PriceRange.Min || item.Price > f.PriceRange.Max {
			return false
		}
	}

	if f.SearchQuery != "" && !matchesSearch(item, f.SearchQuery) {
		return false
	}

	return true
}

// matchesSearch 归一化后的全文检索：标题/描述/位置按折叠键比较，
// 拼音检索键使中文内容可用拉丁音节命中（如 "dong jing" 命中 "东京"）
func matchesSearch(item *ContentItem, query string) bool {
	q := textkey.FoldKey(query)
	if q == "" {
		return true
	}
	return strings.Contains(textkey.FoldKey(item.Title), q) ||
		strings.Contains(textkey.FoldKey(item.Description), q) ||
		strings.Contains(textkey.FoldKey(item.Location), q) ||
		strings.Contains(strings.Join(item.TitlePinyin, " "), q) ||
		strings.Contains(strings.Join(item.LocationPinyin, " "), q)
}

// 计价内容类型：价格过滤只对这些类型生效
func pricedKind(kind string) bool {
	return kind == ItemKindDeal || kind == ItemKindItinerary || kind == ItemKindPromotion
}

func containsFold(list []string, target string) bool {
	for _, v := range list {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
