package discovery_ranking

import (
	"math"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// RelevanceScore 相关性因子 [0,1]
// 基准 0.5；位置命中偏好目的地 +0.2；分类交集按比例最多 +0.2；风格相符 +0.1
// 偏好缺失时返回中性 0.5，个性化数据缺失不应把内容项打到零分
func RelevanceScore(item *discovery_models.ContentItem, prefs *discovery_models.UserPreferences) float64 {
	if prefs == nil {
		return RelevanceBase
	}

	score := RelevanceBase

	itemLocation := strings.ToLower(item.Location)
	if itemLocation != "" {
		for _, dest := range prefs.Destinations {
			if dest != "" && strings.Contains(itemLocation, strings.ToLower(dest)) {
				score += RelevanceDestinationBonus
				break
			}
		}
	}

	if len(item.Categories) > 0 && len(prefs.Categories) > 0 {
		matched := 0
		for _, c := range item.Categories {
			for _, pc := range prefs.Categories {
				if strings.EqualFold(c, pc) {
					matched++
					break
				}
			}
		}
		score += RelevanceCategoryBonus * float64(matched) / float64(len(item.Categories))
	}

	if item.TravelStyle != "" && strings.EqualFold(item.TravelStyle, prefs.TravelStyle) {
		score += RelevanceStyleBonus
	}

	return clamp01(score)
}

// PopularityScore 热度因子 [0,1]
// 加权计数: view×1 + save×5 + like×3 + comment×4 + share×7，过 log10(total+1)/4 压缩
// 指标缺失返回默认 0.3
func PopularityScore(m *discovery_models.EngagementMetrics) float64 {
	if m == nil {
		return PopularityDefault
	}

	total := PopularityViewWeight*float64(m.ViewCount) +
		PopularitySaveWeight*float64(m.SaveCount) +
		PopularityLikeWeight*float64(m.LikeCount) +
		PopularityCommentWeight*float64(m.CommentCount) +
		PopularityShareWeight*float64(m.ShareCount)

	return clamp01(math.Log10(total+1) / PopularityLogScale)
}

// FreshnessScore 新鲜度因子 [0,1]
// 对最近一次触碰时间（创建/更新较晚者）做指数衰减: exp(-days/30)
// 30 天约 0.5，90 天约 0.2
func FreshnessScore(item *discovery_models.ContentItem, now time.Time) float64 {
	days := now.Sub(item.LastTouchedAt()).Hours() / 24
	if days < 0 {
		days = 0
	}
	return clamp01(math.Exp(-days / FreshnessDecayDays))
}

// QualityScore 质量因子 [0,1]
// 60% 完整度清单 + 40% 归一化平均评分（无评分按 0.5）
func QualityScore(item *discovery_models.ContentItem, m *discovery_models.EngagementMetrics) float64 {
	completeness := 0.0
	if item.Title != "" {
		completeness += 0.1
	}
	if len(item.Description) > 10 {
		completeness += 0.2
	}
	if item.Location != "" {
		completeness += 0.1
	}
	if item.StartDate != nil && item.EndDate != nil {
		completeness += 0.1
	}
	if len(item.Activities) > 0 {
		completeness += 0.2
	}
	if item.CoverImageURL != "" {
		completeness += 0.1
	}
	if completeness > 1.0 {
		completeness = 1.0
	}

	rating := QualityDefaultRating
	if m != nil && m.AverageRating > 0 {
		rating = clamp01(m.AverageRating / 5.0)
	}

	return clamp01(QualityCompletenessWeight*completeness + QualityRatingWeight*rating)
}

// ProximityScore 邻近度因子 [0,1]
// 位置文本双向大小写不敏感子串匹配命中返回 1.0，否则中性 0.5
// 任一方位置未知时返回 0.5
// 已知简化：真实地理距离的占位实现；位置理由路径使用大圆距离阈值
func ProximityScore(item *discovery_models.ContentItem, userLocation string) float64 {
	if userLocation == "" || item.Location == "" {
		return ProximityNeutral
	}

	u := strings.ToLower(strings.TrimSpace(userLocation))
	l := strings.ToLower(strings.TrimSpace(item.Location))
	if u == "" || l == "" {
		return ProximityNeutral
	}
	if strings.Contains(l, u) || strings.Contains(u, l) {
		return 1.0
	}
	return ProximityNeutral
}

// ComputeFactors 计算全部五个因子
func ComputeFactors(
	item *discovery_models.ContentItem,
	metrics *discovery_models.EngagementMetrics,
	prefs *discovery_models.UserPreferences,
	userLocation string,
	now time.Time,
) discovery_models.FactorScores {
	return discovery_models.FactorScores{
		Relevance:  RelevanceScore(item, prefs),
		Popularity: PopularityScore(metrics),
		Freshness:  FreshnessScore(item, now),
		Quality:    QualityScore(item, metrics),
		Proximity:  ProximityScore(item, userLocation),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
