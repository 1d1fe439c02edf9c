package discovery_ranking

import (
	"testing"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	newYork     = discovery_models.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	timesSquare = discovery_models.GeoPoint{Latitude: 40.7580, Longitude: -73.9855}
	losAngeles  = discovery_models.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}
)

func TestCalculateReasonScore_BasePoints(t *testing.T) {
	liked := []discovery_models.RecommendationReason{
		{Source: discovery_models.ReasonSourceLiked, Weight: 1.0},
	}
	assert.InDelta(t, 10.0, CalculateReasonScore(liked, 0, 0), 1e-9)

	likedAndSearched := []discovery_models.RecommendationReason{
		{Source: discovery_models.ReasonSourceLiked, Weight: 1.0},
		{Source: discovery_models.ReasonSourceSearched, Weight: 0.8},
	}
	assert.InDelta(t, 16.4, CalculateReasonScore(likedAndSearched, 0, 0), 1e-9)
}

func TestCalculateReasonScore_RecencyAndPopularityInputs(t *testing.T) {
	assert.InDelta(t, 8.0, CalculateReasonScore(nil, 1, 0), 1e-9)
	assert.InDelta(t, 5.0, CalculateReasonScore(nil, 0, 1), 1e-9)
	assert.Equal(t, 0.0, CalculateReasonScore(nil, 0, 0))
}

func TestCalculateReasonScore_AllSourcesAtFullWeight(t *testing.T) {
	reasons := make([]discovery_models.RecommendationReason, 0, len(ReasonBasePoints))
	for source := range ReasonBasePoints {
		reasons = append(reasons, discovery_models.RecommendationReason{Source: source, Weight: 1.0})
	}
	// 全部八个来源基准分之和
	assert.InDelta(t, 49.0, CalculateReasonScore(reasons, 0, 0), 1e-9)
}

func TestGenerateReasons_Fallback(t *testing.T) {
	reasons := GenerateReasons(ReasonInput{ItemID: "item-1"})

	require.Len(t, reasons, 1)
	assert.Equal(t, discovery_models.ReasonSourceTrending, reasons[0].Source)
	assert.Equal(t, 0.3, reasons[0].Weight)
	assert.Equal(t, "Popular with users like you", reasons[0].Description)
}

func TestGenerateReasons_NeverEmpty(t *testing.T) {
	inputs := []ReasonInput{
		{},
		{ItemID: "x"},
		{ItemID: "x", LikedItemIDs: []string{"y"}},
	}
	for _, in := range inputs {
		assert.NotEmpty(t, GenerateReasons(in))
	}
}

func TestGenerateReasons_LocationWithinRadius(t *testing.T) {
	in := ReasonInput{
		ItemID:         "item-1",
		UserCoordinate: &newYork,
		ItemCoordinate: &timesSquare, // 约 5 公里
	}
	reasons := GenerateReasons(in)

	require.Len(t, reasons, 1)
	assert.Equal(t, discovery_models.ReasonSourceLocation, reasons[0].Source)
	assert.Equal(t, 0.6, reasons[0].Weight)
}

func TestGenerateReasons_LocationBeyondRadius(t *testing.T) {
	in := ReasonInput{
		ItemID:         "item-1",
		UserCoordinate: &newYork,
		ItemCoordinate: &losAngeles, // 约 3940 公里
	}
	reasons := GenerateReasons(in)

	// 超出 50 公里只剩兜底理由
	require.Len(t, reasons, 1)
	assert.Equal(t, 0.3, reasons[0].Weight)
}

func TestHaversineKm(t *testing.T) {
	assert.InDelta(t, 5.3, HaversineKm(newYork, timesSquare), 1.0)
	assert.InDelta(t, 3940, HaversineKm(newYork, losAngeles), 50)
}

func TestGenerateReasons_FriendPluralization(t *testing.T) {
	one := GenerateReasons(ReasonInput{
		ItemID:      "item-1",
		FriendLikes: map[string][]string{"friend-a": {"item-1"}},
	})
	require.Len(t, one, 1)
	assert.Equal(t, "1 friend liked this", one[0].Description)
	assert.Equal(t, []string{"friend-a"}, one[0].RelatedItems)

	many := GenerateReasons(ReasonInput{
		ItemID: "item-1",
		FriendLikes: map[string][]string{
			"friend-c": {"item-1"},
			"friend-a": {"item-1", "item-2"},
			"friend-b": {"item-1"},
			"friend-d": {"other"},
		},
	})
	require.Len(t, many, 1)
	assert.Equal(t, "3 friends liked this", many[0].Description)
	assert.Equal(t, []string{"friend-a", "friend-b", "friend-c"}, many[0].RelatedItems)
}

func TestGenerateReasons_AllSpecificSources(t *testing.T) {
	in := ReasonInput{
		ItemID:          "item-1",
		OwnerID:         "owner-1",
		LikedItemIDs:    []string{"item-1"},
		SearchedItemIDs: []string{"item-1"},
		ViewedItemIDs:   []string{"item-1"},
		FriendLikes:     map[string][]string{"friend-a": {"item-1"}},
		FollowedUserIDs: []string{"owner-1"},
		TrendingItemIDs: map[string]bool{"item-1": true},
		UserCoordinate:  &newYork,
		ItemCoordinate:  &timesSquare,
	}
	reasons := GenerateReasons(in)

	require.Len(t, reasons, 7)
	bySource := map[string]discovery_models.RecommendationReason{}
	for _, r := range reasons {
		bySource[r.Source] = r
	}
	assert.Equal(t, 1.0, bySource[discovery_models.ReasonSourceLiked].Weight)
	assert.Equal(t, 0.8, bySource[discovery_models.ReasonSourceSearched].Weight)
	assert.Equal(t, 0.5, bySource[discovery_models.ReasonSourceViewed].Weight)
	assert.Equal(t, 0.7, bySource[discovery_models.ReasonSourceFriend].Weight)
	assert.Equal(t, 0.6, bySource[discovery_models.ReasonSourceFollowed].Weight)
	assert.Equal(t, 0.4, bySource[discovery_models.ReasonSourceTrending].Weight)
	assert.Equal(t, "Trending right now", bySource[discovery_models.ReasonSourceTrending].Description)
	assert.Equal(t, 0.6, bySource[discovery_models.ReasonSourceLocation].Weight)
}
