package discovery_ranking

import (
	"strings"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// Diversify 对按分数降序排列的列表做一次贪心重排
// 前 DiversityUniqueSlots 个槽位要求主分类与位置均未被占用，
// 之后按分数高低回填到 DiversityMaxTotal，约束头部同质化而不牺牲召回
func Diversify(items []discovery_models.ScoredItem) []discovery_models.ScoredItem {
	if len(items) <= 1 {
		return items
	}

	usedCategories := make(map[string]bool)
	usedLocations := make(map[string]bool)

	diverse := make([]discovery_models.ScoredItem, 0, DiversityUniqueSlots)
	leftover := make([]discovery_models.ScoredItem, 0, len(items))

	for _, it := range items {
		if len(diverse) >= DiversityUniqueSlots {
			leftover = append(leftover, it)
			continue
		}

		category := strings.ToLower(it.Item.PrimaryCategory())
		location := strings.ToLower(it.Item.Location)

		// 空分类/空位置不参与唯一性约束
		if (category != "" && usedCategories[category]) || (location != "" && usedLocations[location]) {
			leftover = append(leftover, it)
			continue
		}

		if category != "" {
			usedCategories[category] = true
		}
		if location != "" {
			usedLocations[location] = true
		}
		diverse = append(diverse, it)
	}

	result := append(diverse, leftover...)
	if len(result) > DiversityMaxTotal {
		result = result[:DiversityMaxTotal]
	}
	return result
}
