package usecase_discovery

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_util"
	"github.com/Super-Badmen-Viper/NineTrip/usecase/usecase_discovery/discovery_ranking"
)

const maxTrendingConcurrency = 50

type trendingUsecase struct {
	engagementRepo discovery_interface.EngagementRepository
	catalogRepo    discovery_interface.ContentItemRepository
	timeout        time.Duration
}

func NewTrendingUsecase(
	engagementRepo discovery_interface.EngagementRepository,
	catalogRepo discovery_interface.ContentItemRepository,
	timeout time.Duration,
) discovery_interface.TrendingRefreshRepository {
	return &trendingUsecase{
		engagementRepo: engagementRepo,
		catalogRepo:    catalogRepo,
		timeout:        timeout,
	}
}

func (uc *trendingUsecase) RefreshTrending(ctx context.Context) (*discovery_models.TrendingRefreshResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	startedAt := time.Now()
	progress := &domain_util.TaskProgress{
		ID:     uuid.NewString(),
		Status: "running",
	}
	log.Printf("趋势分数批处理开始: run_id=%s", progress.ID)

	metrics, err := uc.engagementRepo.GetAll(ctx)
	if err != nil {
		progress.SetStatus("failed")
		return nil, fmt.Errorf("获取互动指标失败: %w", err)
	}
	progress.AddTotalItems(len(metrics))

	if len(metrics) == 0 {
		progress.SetStatus("completed")
		log.Printf("趋势分数批处理完成: run_id=%s 无指标文档", progress.ID)
		return &discovery_models.TrendingRefreshResult{
			RunID:     progress.ID,
			StartedAt: startedAt,
			Elapsed:   time.Since(startedAt).String(),
		}, nil
	}

	updates := make([]discovery_models.TrendingUpdate, len(metrics))
	now := time.Now()

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxTrendingConcurrency)
	for i := range metrics {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			updates[i] = discovery_models.TrendingUpdate{
				ItemID: metrics[i].ItemID,
				Score:  discovery_ranking.TrendingScore(&metrics[i], now),
			}
			progress.IncrProcessed()
		}(i)
	}
	wg.Wait()

	updated, err := uc.engagementRepo.ApplyTrendingUpdates(ctx, updates)
	if err != nil {
		progress.SetStatus("failed")
		return nil, fmt.Errorf("回写趋势分数失败: %w", err)
	}

	progress.SetStatus("completed")
	log.Printf("趋势分数批处理完成: run_id=%s 处理=%d 回写=%d 耗时=%s",
		progress.ID, len(metrics), updated, time.Since(startedAt))

	return &discovery_models.TrendingRefreshResult{
		RunID:     progress.ID,
		Processed: len(metrics),
		Updated:   updated,
		StartedAt: startedAt,
		Elapsed:   time.Since(startedAt).String(),
	}, nil
}

func (uc *trendingUsecase) GetTrending(ctx context.Context, limit int) ([]discovery_models.CatalogEntry, error) {
	if limit <= 0 {
		limit = discovery_ranking.SectionLimitDefault
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	entries, err := uc.catalogRepo.GetTrending(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("获取趋势内容失败: %w", err)
	}
	if entries == nil {
		entries = []discovery_models.CatalogEntry{}
	}
	return entries, nil
}
