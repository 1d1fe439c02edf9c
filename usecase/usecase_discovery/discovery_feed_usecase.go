package usecase_discovery

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_util"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_discovery/discovery_ranking"
)

// seasonal 分区的选取窗口：开始日期落在未来这些天内（或当前正在进行）
const seasonalWindowDays = 90

type feedUsecase struct {
	catalogRepo   discovery_interface.ContentItemRepository
	prefsRepo     discovery_interface.PreferencesRepository
	behaviorRepo  discovery_interface.BehaviorRepository
	placementRepo discovery_interface.PlacementRepository
	configRepo    domain.ConfigRepository[discovery_models.RankingConfig]
	timeout       time.Duration
}

func NewFeedUsecase(
	catalogRepo discovery_interface.ContentItemRepository,
	prefsRepo discovery_interface.PreferencesRepository,
	behaviorRepo discovery_interface.BehaviorRepository,
	placementRepo discovery_interface.PlacementRepository,
	configRepo domain.ConfigRepository[discovery_models.RankingConfig],
	timeout time.Duration,
) discovery_interface.DiscoveryFeedRepository {
	return &feedUsecase{
		catalogRepo:   catalogRepo,
		prefsRepo:     prefsRepo,
		behaviorRepo:  behaviorRepo,
		placementRepo: placementRepo,
		configRepo:    configRepo,
		timeout:       timeout,
	}
}

func (uc *feedUsecase) BuildFeed(
	ctx context.Context,
	userID string,
	userLocation string,
	userGeo *discovery_models.GeoPoint,
	filter *discovery_models.DiscoveryFilter,
) (*discovery_models.DiscoveryFeed, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	entries, err := uc.catalogRepo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("获取目录数据失败: %w", err)
	}

	// 评分前的权威过滤 + 按ID去重（分区内不允许重复ID）
	seen := make(map[string]bool, len(entries))
	filtered := make([]discovery_models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		id := e.Item.ID.Hex()
		if seen[id] || !filter.Matches(&e.Item) {
			continue
		}
		seen[id] = true
		filtered = append(filtered, e)
	}

	// 空目录：所有分区均为空列表，非错误
	if len(filtered) == 0 {
		return discovery_models.NewEmptyFeed(), nil
	}

	var prefs *discovery_models.UserPreferences
	var behavior *discovery_models.UserBehaviorSignals
	if userID != "" {
		if prefs, err = uc.prefsRepo.GetByUserID(ctx, userID); err != nil {
			return nil, fmt.Errorf("获取用户偏好失败: %w", err)
		}
		if behavior, err = uc.behaviorRepo.GetByUserID(ctx, userID); err != nil {
			return nil, fmt.Errorf("获取用户行为数据失败: %w", err)
		}
	}

	weights := discovery_ranking.DefaultFactorWeights()
	if cfg, cfgErr := uc.configRepo.Get(ctx); cfgErr == nil {
		weights = discovery_ranking.FactorWeightsFromConfig(cfg)
	}

	boosts := loadFeedBoosts(ctx, uc.placementRepo, filtered)

	return composeFeed(filtered, prefs, behavior, userLocation, userGeo, weights, boosts, time.Now()), nil
}

func loadFeedBoosts(
	ctx context.Context,
	placementRepo discovery_interface.PlacementRepository,
	entries []discovery_models.CatalogEntry,
) map[string]float64 {
	ownerIDs := make([]string, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Item.OwnerID != "" && !seen[e.Item.OwnerID] {
			seen[e.Item.OwnerID] = true
			ownerIDs = append(ownerIDs, e.Item.OwnerID)
		}
	}
	if len(ownerIDs) == 0 {
		return nil
	}
	boosts, err := placementRepo.GetBoosts(ctx, ownerIDs)
	if err != nil {
		log.Printf("获取推广等级加成失败，按无加成处理: %v", err)
		return nil
	}
	return boosts
}

// composeFeed 在已取回的目录切片上组装七个分区
// 分区相互独立计算，允许跨分区重叠；纯计算，不做任何I/O
func composeFeed(
	entries []discovery_models.CatalogEntry,
	prefs *discovery_models.UserPreferences,
	behavior *discovery_models.UserBehaviorSignals,
	userLocation string,
	userGeo *discovery_models.GeoPoint,
	weights discovery_ranking.FactorWeights,
	boosts map[string]float64,
	now time.Time,
) *discovery_models.DiscoveryFeed {
	scored := scoreEntries(entries, prefs, userLocation, weights, boosts, now)

	// 趋势ID集合：趋势分区的成员，同时作为理由生成的趋势信号
	trendingIdx := trendingIndexes(entries, discovery_ranking.SectionLimitDefault)
	trendingIDs := make(map[string]bool, len(trendingIdx))
	for _, i := range trendingIdx {
		trendingIDs[entries[i].Item.ID.Hex()] = true
	}

	reasons := make([][]discovery_models.RecommendationReason, len(entries))
	for i := range entries {
		reasons[i] = discovery_ranking.GenerateReasons(reasonInputFor(&entries[i].Item, behavior, userGeo, trendingIDs))
	}

	feed := discovery_models.NewEmptyFeed()

	// personalRecommendations: 综合分数最高的内容项
	finalScores := make([]float64, len(scored))
	for i, s := range scored {
		finalScores[i] = s.Score
	}
	for _, i := range domain_util.TopKIndexes(finalScores, discovery_ranking.SectionLimitPersonal) {
		feed.PersonalRecommendations = append(feed.PersonalRecommendations, feedEntry(scored[i], reasons[i]))
	}

	// trending: 按批处理派生的趋势分数排序
	for _, i := range trendingIdx {
		feed.Trending = append(feed.Trending, feedEntry(scored[i], reasons[i]))
	}

	// forYou: 命中用户自身行为信号的内容项，按理由加法分数排序
	feed.ForYou = forYouSection(entries, scored, reasons, now)

	// nearby: 位置命中或坐标在阈值半径内
	feed.Nearby = nearbySection(entries, scored, reasons, userLocation, userGeo)

	// friendsLiked: 任一好友点赞过的内容项
	feed.FriendsLiked = friendsLikedSection(scored, reasons)

	// seasonal: 日期窗口覆盖当前或临近出发的内容项
	feed.Seasonal = seasonalSection(entries, scored, reasons, now)

	// similar: 与用户点赞内容共享分类的内容项，携带派生分类标签
	feed.Similar = similarSection(entries, scored, reasons, behavior)

	return feed
}

func feedEntry(s discovery_models.ScoredItem, reasons []discovery_models.RecommendationReason) discovery_models.FeedEntry {
	return discovery_models.FeedEntry{Item: s.Item, Score: s.Score, Reasons: reasons}
}

func reasonInputFor(
	item *discovery_models.ContentItem,
	behavior *discovery_models.UserBehaviorSignals,
	userGeo *discovery_models.GeoPoint,
	trendingIDs map[string]bool,
) discovery_ranking.ReasonInput {
	in := discovery_ranking.ReasonInput{
		ItemID:          item.ID.Hex(),
		OwnerID:         item.OwnerID,
		ItemCoordinate:  item.Coordinate,
		UserCoordinate:  userGeo,
		TrendingItemIDs: trendingIDs,
	}
	if behavior != nil {
		in.LikedItemIDs = behavior.LikedItemIDs
		in.SearchedItemIDs = behavior.SearchedItemIDs
		in.ViewedItemIDs = behavior.ViewedItemIDs
		in.FriendLikes = behavior.FriendLikes
		in.FollowedUserIDs = behavior.FollowedUserIDs
	}
	return in
}

func trendingIndexes(entries []discovery_models.CatalogEntry, limit int) []int {
	scores := make([]float64, len(entries))
	hasAny := false
	for i, e := range entries {
		if e.Metrics != nil && e.Metrics.TrendingScore > 0 {
			scores[i] = e.Metrics.TrendingScore
			hasAny = true
		}
	}
	if !hasAny {
		return []int{}
	}
	top := domain_util.TopKIndexes(scores, limit)
	// 剔除没有趋势分数的占位项
	result := top[:0]
	for _, i := range top {
		if scores[i] > 0 {
			result = append(result, i)
		}
	}
	return result
}

func forYouSection(
	entries []discovery_models.CatalogEntry,
	scored []discovery_models.ScoredItem,
	reasons [][]discovery_models.RecommendationReason,
	now time.Time,
) []discovery_models.FeedEntry {
	ownSignal := map[string]bool{
		discovery_models.ReasonSourceLiked:    true,
		discovery_models.ReasonSourceSearched: true,
		discovery_models.ReasonSourceViewed:   true,
		discovery_models.ReasonSourceFollowed: true,
	}

	candidates := make([]int, 0, len(entries))
	additive := make([]float64, len(entries))
	for i := range entries {
		matched := false
		for _, r := range reasons[i] {
			if ownSignal[r.Source] {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		recency := discovery_ranking.FreshnessScore(&entries[i].Item, now)
		popularity := discovery_ranking.PopularityScore(entries[i].Metrics)
		additive[i] = discovery_ranking.CalculateReasonScore(reasons[i], recency, popularity)
		candidates = append(candidates, i)
	}

	return pickTop(candidates, additive, scored, reasons, discovery_ranking.SectionLimitDefault)
}

func nearbySection(
	entries []discovery_models.CatalogEntry,
	scored []discovery_models.ScoredItem,
	reasons [][]discovery_models.RecommendationReason,
	userLocation string,
	userGeo *discovery_models.GeoPoint,
) []discovery_models.FeedEntry {
	if userLocation == "" && userGeo == nil {
		return []discovery_models.FeedEntry{}
	}

	candidates := make([]int, 0, len(entries))
	finalScores := make([]float64, len(entries))
	for i := range entries {
		item := &entries[i].Item
		near := userLocation != "" && discovery_ranking.ProximityScore(item, userLocation) == 1.0
		if !near && userGeo != nil && item.Coordinate != nil {
			near = discovery_ranking.HaversineKm(*userGeo, *item.Coordinate) <= discovery_ranking.LocationReasonRadiusKm
		}
		if near {
			finalScores[i] = scored[i].Score
			candidates = append(candidates, i)
		}
	}

	return pickTop(candidates, finalScores, scored, reasons, discovery_ranking.SectionLimitDefault)
}

func friendsLikedSection(
	scored []discovery_models.ScoredItem,
	reasons [][]discovery_models.RecommendationReason,
) []discovery_models.FeedEntry {
	candidates := make([]int, 0, len(scored))
	finalScores := make([]float64, len(scored))
	for i := range scored {
		for _, r := range reasons[i] {
			if r.Source == discovery_models.ReasonSourceFriend {
				finalScores[i] = scored[i].Score
				candidates = append(candidates, i)
				break
			}
		}
	}
	return pickTop(candidates, finalScores, scored, reasons, discovery_ranking.SectionLimitDefault)
}

func seasonalSection(
	entries []discovery_models.CatalogEntry,
	scored []discovery_models.ScoredItem,
	reasons [][]discovery_models.RecommendationReason,
	now time.Time,
) []discovery_models.FeedEntry {
	horizon := now.AddDate(0, 0, seasonalWindowDays)

	candidates := make([]int, 0, len(entries))
	finalScores := make([]float64, len(entries))
	for i := range entries {
		item := &entries[i].Item
		if item.StartDate == nil {
			continue
		}
		upcoming := !item.StartDate.Before(now) && !item.StartDate.After(horizon)
		ongoing := item.StartDate.Before(now) && item.EndDate != nil && !item.EndDate.Before(now)
		if upcoming || ongoing {
			finalScores[i] = scored[i].Score
			candidates = append(candidates, i)
		}
	}

	section := pickTop(candidates, finalScores, scored, reasons, discovery_ranking.SectionLimitDefault)
	for i := range section {
		section[i].Reasons = append([]discovery_models.RecommendationReason{{
			Source:      discovery_models.ReasonSourceSeasonal,
			Weight:      discovery_ranking.ReasonWeightSeasonal,
			Description: "In season for upcoming dates",
		}}, section[i].Reasons...)
	}
	return section
}

func similarSection(
	entries []discovery_models.CatalogEntry,
	scored []discovery_models.ScoredItem,
	reasons [][]discovery_models.RecommendationReason,
	behavior *discovery_models.UserBehaviorSignals,
) []discovery_models.SimilarEntry {
	if behavior == nil || len(behavior.LikedItemIDs) == 0 {
		return []discovery_models.SimilarEntry{}
	}

	// 用户点赞内容的分类集合
	likedCategories := make(map[string]bool)
	likedIDs := make(map[string]bool, len(behavior.LikedItemIDs))
	for _, id := range behavior.LikedItemIDs {
		likedIDs[id] = true
	}
	for i := range entries {
		if likedIDs[entries[i].Item.ID.Hex()] {
			for _, c := range entries[i].Item.Categories {
				if c != "" {
					likedCategories[strings.ToLower(c)] = true
				}
			}
		}
	}
	if len(likedCategories) == 0 {
		return []discovery_models.SimilarEntry{}
	}

	candidates := make([]int, 0, len(entries))
	finalScores := make([]float64, len(entries))
	sharedCategory := make([]string, len(entries))
	for i := range entries {
		if likedIDs[entries[i].Item.ID.Hex()] {
			continue // 已点赞的内容项不再作为相似推荐
		}
		for _, c := range entries[i].Item.Categories {
			if likedCategories[strings.ToLower(c)] {
				sharedCategory[i] = c
				finalScores[i] = scored[i].Score
				candidates = append(candidates, i)
				break
			}
		}
	}

	picked := pickTopIndexes(candidates, finalScores, discovery_ranking.SectionLimitDefault)
	section := make([]discovery_models.SimilarEntry, 0, len(picked))
	for _, i := range picked {
		section = append(section, discovery_models.SimilarEntry{
			FeedEntry: feedEntry(scored[i], reasons[i]),
			Category:  sharedCategory[i],
		})
	}
	return section
}

// pickTop 在候选下标中按给定分数取前K项
func pickTop(
	candidates []int,
	scores []float64,
	scored []discovery_models.ScoredItem,
	reasons [][]discovery_models.RecommendationReason,
	limit int,
) []discovery_models.FeedEntry {
	picked := pickTopIndexes(candidates, scores, limit)
	section := make([]discovery_models.FeedEntry, 0, len(picked))
	for _, i := range picked {
		section = append(section, feedEntry(scored[i], reasons[i]))
	}
	return section
}

func pickTopIndexes(candidates []int, scores []float64, limit int) []int {
	if len(candidates) == 0 {
		return []int{}
	}
	candidateScores := make([]float64, len(candidates))
	for j, i := range candidates {
		candidateScores[j] = scores[i]
	}
	top := domain_util.TopKIndexes(candidateScores, limit)
	picked := make([]int, len(top))
	for j, t := range top {
		picked[j] = candidates[t]
	}
	return picked
}
