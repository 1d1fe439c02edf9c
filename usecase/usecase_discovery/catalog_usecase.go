package usecase_discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_interface"
	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

type catalogUsecase struct {
	catalogRepo discovery_interface.ContentItemRepository
	timeout     time.Duration
}

// NewCatalogUsecase 目录写入口，校验后委托仓储生成检索键并落库
func NewCatalogUsecase(
	catalogRepo discovery_interface.ContentItemRepository,
	timeout time.Duration,
) discovery_interface.ContentItemRepository {
	return &catalogUsecase{
		catalogRepo: catalogRepo,
		timeout:     timeout,
	}
}

func (uc *catalogUsecase) GetFiltered(
	ctx context.Context,
	filter *discovery_models.DiscoveryFilter,
) ([]discovery_models.CatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.catalogRepo.GetFiltered(ctx, filter)
}

func (uc *catalogUsecase) GetTrending(
	ctx context.Context,
	limit int,
) ([]discovery_models.CatalogEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.catalogRepo.GetTrending(ctx, limit)
}

func (uc *catalogUsecase) Upsert(ctx context.Context, item *discovery_models.ContentItem) error {
	if item == nil {
		return fmt.Errorf("内容项不能为空")
	}
	if item.Title == "" {
		return fmt.Errorf("内容项标题不能为空")
	}
	if !validItemKind(item.Kind) {
		return fmt.Errorf("无效的内容类型: %s", item.Kind)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.catalogRepo.Upsert(ctx, item)
}

func validItemKind(kind string) bool {
	switch kind {
	case discovery_models.ItemKindItinerary,
		discovery_models.ItemKindDeal,
		discovery_models.ItemKindPromotion,
		discovery_models.ItemKindUser,
		discovery_models.ItemKindDestination:
		return true
	}
	return false
}
