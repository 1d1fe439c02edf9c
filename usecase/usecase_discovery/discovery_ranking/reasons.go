package discovery_ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

// ReasonInput 理由生成的输入信号，全部为普通值，可安全并行
type ReasonInput struct {
	ItemID         string
	OwnerID        string
	ItemCoordinate *discovery_models.GeoPoint
	UserCoordinate *discovery_models.GeoPoint

	LikedItemIDs    []string
	SearchedItemIDs []string
	ViewedItemIDs   []string
	FriendLikes     map[string][]string // 好友ID -> 其点赞的内容项ID
	FollowedUserIDs []string
	TrendingItemIDs map[string]bool
}

// GenerateReasons 生成有序的推荐理由列表
// 始终返回至少一条理由：无具体信号命中时返回单条兜底理由 (weight 0.3)
func GenerateReasons(in ReasonInput) []discovery_models.RecommendationReason {
	reasons := make([]discovery_models.RecommendationReason, 0, 4)

	if containsID(in.LikedItemIDs, in.ItemID) {
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:      discovery_models.ReasonSourceLiked,
			Weight:      ReasonWeightLiked,
			Description: "You liked this before",
		})
	}

	if containsID(in.SearchedItemIDs, in.ItemID) {
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:      discovery_models.ReasonSourceSearched,
			Weight:      ReasonWeightSearched,
			Description: "Matches your recent searches",
		})
	}

	if containsID(in.ViewedItemIDs, in.ItemID) {
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:      discovery_models.ReasonSourceViewed,
			Weight:      ReasonWeightViewed,
			Description: "You viewed this recently",
		})
	}

	if friends := likingFriends(in.FriendLikes, in.ItemID); len(friends) > 0 {
		description := fmt.Sprintf("%d friends liked this", len(friends))
		if len(friends) == 1 {
			description = "1 friend liked this"
		}
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:       discovery_models.ReasonSourceFriend,
			Weight:       ReasonWeightFriend,
			Description:  description,
			RelatedItems: friends,
		})
	}

	if in.OwnerID != "" && containsID(in.FollowedUserIDs, in.OwnerID) {
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:      discovery_models.ReasonSourceFollowed,
			Weight:      ReasonWeightFollowed,
			Description: "From a traveler you follow",
		})
	}

	if in.TrendingItemIDs[in.ItemID] {
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:      discovery_models.ReasonSourceTrending,
			Weight:      ReasonWeightTrending,
			Description: "Trending right now",
		})
	}

	if in.UserCoordinate != nil && in.ItemCoordinate != nil {
		if HaversineKm(*in.UserCoordinate, *in.ItemCoordinate) <= LocationReasonRadiusKm {
			reasons = append(reasons, discovery_models.RecommendationReason{
				Source:      discovery_models.ReasonSourceLocation,
				Weight:      ReasonWeightLocation,
				Description: "Near your location",
			})
		}
	}

	// 兜底：保证每个被推荐的内容项至少携带一条理由
	if len(reasons) == 0 {
		reasons = append(reasons, discovery_models.RecommendationReason{
			Source:      discovery_models.ReasonSourceTrending,
			Weight:      ReasonWeightFallback,
			Description: "Popular with users like you",
		})
	}

	return reasons
}

// CalculateReasonScore 理由路径的加法分数
// Σ(weight × 来源基准分) + recency×0.8×10 + popularity×5
// 与多因子组合分数相互独立，服务于可解释的简化排序面
func CalculateReasonScore(reasons []discovery_models.RecommendationReason, recency, popularity float64) float64 {
	score := 0.0
	for _, r := range reasons {
		score += r.Weight * ReasonBasePoints[r.Source]
	}
	score += recency * ReasonRecencyFactor * ReasonRecencyScale
	score += popularity * ReasonPopularityScale
	return score
}

// HaversineKm 两个坐标点之间的大圆距离（公里）
func HaversineKm(a, b discovery_models.GeoPoint) float64 {
	const earthRadiusKm = 6371.0

	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func likingFriends(friendLikes map[string][]string, itemID string) []string {
	if len(friendLikes) == 0 || itemID == "" {
		return nil
	}
	friends := make([]string, 0, len(friendLikes))
	for friendID, likedIDs := range friendLikes {
		if containsID(likedIDs, itemID) {
			friends = append(friends, friendID)
		}
	}
	sort.Strings(friends)
	return friends
}

func containsID(list []string, id string) bool {
	if id == "" {
		return false
	}
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
