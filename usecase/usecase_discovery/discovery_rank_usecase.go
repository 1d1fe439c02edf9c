package usecase_discovery

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_discovery/discovery_ranking"
)

// 单次排序调用的评分并发上限
const maxScoringConcurrency = 50

type rankUsecase struct {
	catalogRepo   discovery_interface.ContentItemRepository
	prefsRepo     discovery_interface.PreferencesRepository
	behaviorRepo  discovery_interface.BehaviorRepository
	placementRepo discovery_interface.PlacementRepository
	configRepo    domain.ConfigRepository[discovery_models.RankingConfig]
	timeout       time.Duration
}

func NewRankUsecase(
	catalogRepo discovery_interface.ContentItemRepository,
	prefsRepo discovery_interface.PreferencesRepository,
	behaviorRepo discovery_interface.BehaviorRepository,
	placementRepo discovery_interface.PlacementRepository,
	configRepo domain.ConfigRepository[discovery_models.RankingConfig],
	timeout time.Duration,
) discovery_interface.DiscoveryRankRepository {
	return &rankUsecase{
		catalogRepo:   catalogRepo,
		prefsRepo:     prefsRepo,
		behaviorRepo:  behaviorRepo,
		placementRepo: placementRepo,
		configRepo:    configRepo,
		timeout:       timeout,
	}
}

func (uc *rankUsecase) Rank(
	ctx context.Context,
	userID string,
	userLocation string,
	filter *discovery_models.DiscoveryFilter,
	offset, limit int,
) ([]discovery_models.ScoredItem, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit参数必须大于0")
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	entries, err := uc.catalogRepo.GetFiltered(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("获取目录数据失败: %w", err)
	}

	// 评分前的权威过滤；仓储端的数据库过滤只做粗筛
	filtered := make([]discovery_models.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if filter.Matches(&e.Item) {
			filtered = append(filtered, e)
		}
	}

	// 空结果是合法的非错误结果
	if len(filtered) == 0 {
		return []discovery_models.ScoredItem{}, nil
	}

	prefs, err := uc.loadPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	weights := uc.loadWeights(ctx)
	boosts := uc.loadBoosts(ctx, filtered)

	scored := scoreEntries(filtered, prefs, userLocation, weights, boosts, time.Now())

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	diversified := discovery_ranking.Diversify(scored)

	if offset >= len(diversified) {
		return []discovery_models.ScoredItem{}, nil
	}
	end := offset + limit
	if end > len(diversified) {
		end = len(diversified)
	}
	return diversified[offset:end], nil
}

func (uc *rankUsecase) loadPreferences(ctx context.Context, userID string) (*discovery_models.UserPreferences, error) {
	if userID == "" {
		return nil, nil
	}
	prefs, err := uc.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("获取用户偏好失败: %w", err)
	}
	return prefs, nil
}

// loadWeights 配置缺失时回退默认权重，不中断排序
func (uc *rankUsecase) loadWeights(ctx context.Context) discovery_ranking.FactorWeights {
	cfg, err := uc.configRepo.Get(ctx)
	if err != nil {
		return discovery_ranking.DefaultFactorWeights()
	}
	return discovery_ranking.FactorWeightsFromConfig(cfg)
}

// loadBoosts 推广等级查询失败时按无加成处理，不中断排序
func (uc *rankUsecase) loadBoosts(ctx context.Context, entries []discovery_models.CatalogEntry) map[string]float64 {
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

	boosts, err := uc.placementRepo.GetBoosts(ctx, ownerIDs)
	if err != nil {
		log.Printf("获取推广等级加成失败，按无加成处理: %v", err)
		return nil
	}
	return boosts
}

// scoreEntries 并行计算每项的因子分数与组合分数
// 评分为无副作用的纯计算，按项并行无需加锁
func scoreEntries(
	entries []discovery_models.CatalogEntry,
	prefs *discovery_models.UserPreferences,
	userLocation string,
	weights discovery_ranking.FactorWeights,
	boosts map[string]float64,
	now time.Time,
) []discovery_models.ScoredItem {
	scored := make([]discovery_models.ScoredItem, len(entries))

	sem := make(chan struct{}, maxScoringConcurrency)
	var wg sync.WaitGroup

	for i := range entries {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entry := entries[idx]
			factors := discovery_ranking.ComputeFactors(&entry.Item, entry.Metrics, prefs, userLocation, now)
			score := discovery_ranking.CombineScore(factors, weights)
			if boost, ok := boosts[entry.Item.OwnerID]; ok {
				score = discovery_ranking.ApplyPlacementBoost(score, boost)
			}

			scored[idx] = discovery_models.ScoredItem{
				Item:    entry.Item,
				Factors: factors,
				Score:   score,
			}
		}(i)
	}
	wg.Wait()

	return scored
}
