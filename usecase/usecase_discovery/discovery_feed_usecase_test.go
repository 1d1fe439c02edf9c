package usecase_discovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

func newFeedUsecaseForTest(catalog *fakeCatalogRepo, behavior *fakeBehaviorRepo) *feedUsecase {
	if behavior == nil {
		behavior = &fakeBehaviorRepo{}
	}
	uc := NewFeedUsecase(
		catalog,
		&fakePrefsRepo{},
		behavior,
		&fakePlacementRepo{},
		&fakeConfigRepo{},
		5*time.Second,
	)
	return uc.(*feedUsecase)
}

func TestBuildFeedEmptyCatalog(t *testing.T) {
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, feed)

	// 空目录不是错误，所有分区均为空列表而非 nil
	assert.NotNil(t, feed.PersonalRecommendations)
	assert.NotNil(t, feed.Trending)
	assert.NotNil(t, feed.ForYou)
	assert.NotNil(t, feed.Nearby)
	assert.NotNil(t, feed.FriendsLiked)
	assert.NotNil(t, feed.Seasonal)
	assert.NotNil(t, feed.Similar)
	assert.Empty(t, feed.PersonalRecommendations)
	assert.Empty(t, feed.Similar)
}

func TestBuildFeedSectionCaps(t *testing.T) {
	items := make([]discovery_models.ContentItem, 15)
	entries := make([]discovery_models.CatalogEntry, 15)
	for i := range items {
		items[i] = testItem("行程", "东京", "美食", i)
		entries[i] = discovery_models.CatalogEntry{
			Item: items[i],
			Metrics: &discovery_models.EngagementMetrics{
				ItemID:        items[i].ID.Hex(),
				ViewCount:     100,
				LikeCount:     int64(50 + i),
				TrendingScore: 0.5 + float64(i)/100,
				UpdatedAt:     time.Now(),
			},
		}
	}
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entries}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)

	assert.Len(t, feed.PersonalRecommendations, 5)
	assert.Len(t, feed.Trending, 10)
}

func TestBuildFeedTrendingOrder(t *testing.T) {
	low := testItem("冷门行程", "东京", "美食", 1)
	high := testItem("热门行程", "大阪", "购物", 1)
	entries := []discovery_models.CatalogEntry{
		{Item: low, Metrics: &discovery_models.EngagementMetrics{ItemID: low.ID.Hex(), TrendingScore: 0.2}},
		{Item: high, Metrics: &discovery_models.EngagementMetrics{ItemID: high.ID.Hex(), TrendingScore: 0.9}},
	}
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entries}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)

	require.Len(t, feed.Trending, 2)
	assert.Equal(t, high.ID, feed.Trending[0].Item.ID)
	assert.Equal(t, low.ID, feed.Trending[1].Item.ID)
}

func TestBuildFeedFriendsLiked(t *testing.T) {
	liked := testItem("好友喜欢的行程", "东京", "美食", 1)
	other := testItem("无人问津的行程", "大阪", "购物", 1)

	behavior := &fakeBehaviorRepo{behavior: &discovery_models.UserBehaviorSignals{
		UserID:      "u1",
		FriendLikes: map[string][]string{
			"friend-a": {liked.ID.Hex()},
			"friend-b": {liked.ID.Hex()},
		},
	}}
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(liked, other)}, behavior)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)

	require.Len(t, feed.FriendsLiked, 1)
	assert.Equal(t, liked.ID, feed.FriendsLiked[0].Item.ID)

	var friendReason *discovery_models.RecommendationReason
	for i, r := range feed.FriendsLiked[0].Reasons {
		if r.Source == discovery_models.ReasonSourceFriend {
			friendReason = &feed.FriendsLiked[0].Reasons[i]
		}
	}
	require.NotNil(t, friendReason)
	assert.Equal(t, "2 friends liked this", friendReason.Description)
	assert.ElementsMatch(t, []string{"friend-a", "friend-b"}, friendReason.RelatedItems)
}

func TestBuildFeedNearbyByLocationText(t *testing.T) {
	near := testItem("浅草寺一日游", "东京, 日本", "文化", 1)
	far := testItem("卢浮宫半日游", "巴黎, 法国", "文化", 1)
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(near, far)}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "东京", nil, nil)
	require.NoError(t, err)

	require.Len(t, feed.Nearby, 1)
	assert.Equal(t, near.ID, feed.Nearby[0].Item.ID)
}

func TestBuildFeedNearbyByCoordinate(t *testing.T) {
	timesSquare := testItem("时代广场徒步", "Times Square", "城市", 1)
	timesSquare.Coordinate = &discovery_models.GeoPoint{Latitude: 40.7580, Longitude: -73.9855}
	losAngeles := testItem("好莱坞观光", "Los Angeles", "城市", 1)
	losAngeles.Coordinate = &discovery_models.GeoPoint{Latitude: 34.0522, Longitude: -118.2437}

	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(timesSquare, losAngeles)}, nil)

	newYork := &discovery_models.GeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	feed, err := uc.BuildFeed(context.Background(), "u1", "", newYork, nil)
	require.NoError(t, err)

	require.Len(t, feed.Nearby, 1)
	assert.Equal(t, timesSquare.ID, feed.Nearby[0].Item.ID)
}

func TestBuildFeedNearbyEmptyWithoutUserLocation(t *testing.T) {
	item := testItem("行程", "东京", "美食", 1)
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(item)}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, feed.Nearby)
}

func TestBuildFeedSeasonal(t *testing.T) {
	soon := testItem("樱花季行程", "京都", "赏花", 1)
	start := time.Now().AddDate(0, 0, 30)
	end := time.Now().AddDate(0, 0, 37)
	soon.StartDate = &start
	soon.EndDate = &end

	distant := testItem("明年的行程", "京都", "赏花", 1)
	farStart := time.Now().AddDate(1, 0, 0)
	distant.StartDate = &farStart

	undated := testItem("无日期行程", "京都", "美食", 1)

	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(soon, distant, undated)}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)

	require.Len(t, feed.Seasonal, 1)
	assert.Equal(t, soon.ID, feed.Seasonal[0].Item.ID)
	require.NotEmpty(t, feed.Seasonal[0].Reasons)
	assert.Equal(t, discovery_models.ReasonSourceSeasonal, feed.Seasonal[0].Reasons[0].Source)
}

func TestBuildFeedForYouAndSimilar(t *testing.T) {
	likedItem := testItem("已点赞的美食行程", "东京", "美食", 1)
	sameCategory := testItem("另一条美食行程", "大阪", "美食", 1)
	unrelated := testItem("徒步行程", "尼泊尔", "徒步", 1)

	behavior := &fakeBehaviorRepo{behavior: &discovery_models.UserBehaviorSignals{
		UserID:       "u1",
		LikedItemIDs: []string{likedItem.ID.Hex()},
	}}
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(likedItem, sameCategory, unrelated)}, behavior)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)

	// forYou 只收录命中用户自身行为信号的内容项
	require.Len(t, feed.ForYou, 1)
	assert.Equal(t, likedItem.ID, feed.ForYou[0].Item.ID)

	// similar 收录与点赞内容共享分类的其他内容项，且不含已点赞项本身
	require.Len(t, feed.Similar, 1)
	assert.Equal(t, sameCategory.ID, feed.Similar[0].Item.ID)
	assert.Equal(t, "美食", feed.Similar[0].Category)
}

func TestBuildFeedTypeFilter(t *testing.T) {
	itinerary := testItem("行程", "东京", "美食", 1)
	deal := testItem("特价机票", "东京", "机票", 1)
	deal.Kind = discovery_models.ItemKindDeal

	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(itinerary, deal)}, nil)

	filter := &discovery_models.DiscoveryFilter{Types: []string{discovery_models.ItemKindItinerary}}
	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, filter)
	require.NoError(t, err)

	require.Len(t, feed.PersonalRecommendations, 1)
	assert.Equal(t, itinerary.ID, feed.PersonalRecommendations[0].Item.ID)
}

func TestBuildFeedPriceRangeFilter(t *testing.T) {
	cheap := testItem("平价优惠", "东京", "美食", 1)
	cheap.Kind = discovery_models.ItemKindDeal
	cheap.Price = 80

	pricey := testItem("高价优惠", "东京", "美食", 1)
	pricey.Kind = discovery_models.ItemKindDeal
	pricey.Price = 500

	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(cheap, pricey)}, nil)

	filter := &discovery_models.DiscoveryFilter{PriceRange: &discovery_models.PriceRange{Min: 0, Max: 100}}
	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, filter)
	require.NoError(t, err)

	require.Len(t, feed.PersonalRecommendations, 1)
	assert.Equal(t, cheap.ID, feed.PersonalRecommendations[0].Item.ID)
}

func TestBuildFeedDeduplicatesCatalog(t *testing.T) {
	item := testItem("重复的行程", "东京", "美食", 1)
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(item, item)}, nil)

	feed, err := uc.BuildFeed(context.Background(), "u1", "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, feed.PersonalRecommendations, 1)
}

func TestBuildFeedAnonymousUser(t *testing.T) {
	item := testItem("行程", "东京", "美食", 1)
	uc := newFeedUsecaseForTest(&fakeCatalogRepo{entries: entriesOf(item)}, nil)

	// 匿名访客照常返回信息流，个性化分区为空
	feed, err := uc.BuildFeed(context.Background(), "", "", nil, nil)
	require.NoError(t, err)
	assert.Len(t, feed.PersonalRecommendations, 1)
	assert.Empty(t, feed.ForYou)
	assert.Empty(t, feed.FriendsLiked)
	assert.Empty(t, feed.Similar)
}
