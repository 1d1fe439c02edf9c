package usecase_discovery

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Super-Badmen-Viper/NineTrip/domain/domain_discovery/discovery_models"
)

type fakeCatalogRepo struct {
	entries  []discovery_models.CatalogEntry
	trending []discovery_models.CatalogEntry
	err      error
}

func (f *fakeCatalogRepo) GetFiltered(_ context.Context, _ *discovery_models.DiscoveryFilter) ([]discovery_models.CatalogEntry, error) {
	return f.entries, f.err
}

func (f *fakeCatalogRepo) GetTrending(_ context.Context, limit int) ([]discovery_models.CatalogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.trending) {
		return f.trending[:limit], nil
	}
	return f.trending, nil
}

func (f *fakeCatalogRepo) Upsert(_ context.Context, _ *discovery_models.ContentItem) error {
	return f.err
}

type fakePrefsRepo struct {
	prefs *discovery_models.UserPreferences
	err   error
}

func (f *fakePrefsRepo) GetByUserID(_ context.Context, _ string) (*discovery_models.UserPreferences, error) {
	return f.prefs, f.err
}

type fakeBehaviorRepo struct {
	behavior *discovery_models.UserBehaviorSignals
	err      error
}

func (f *fakeBehaviorRepo) GetByUserID(_ context.Context, _ string) (*discovery_models.UserBehaviorSignals, error) {
	return f.behavior, f.err
}

type fakePlacementRepo struct {
	boosts map[string]float64
	err    error
}

func (f *fakePlacementRepo) GetBoosts(_ context.Context, _ []string) (map[string]float64, error) {
	return f.boosts, f.err
}

type fakeEngagementRepo struct {
	metrics []discovery_models.EngagementMetrics
	applied []discovery_models.TrendingUpdate
	err     error
}

func (f *fakeEngagementRepo) GetAll(_ context.Context) ([]discovery_models.EngagementMetrics, error) {
	return f.metrics, f.err
}

func (f *fakeEngagementRepo) ApplyTrendingUpdates(_ context.Context, updates []discovery_models.TrendingUpdate) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.applied = updates
	return int64(len(updates)), nil
}

type fakeConfigRepo struct {
	cfg *discovery_models.RankingConfig
	err error
}

func (f *fakeConfigRepo) Get(_ context.Context) (*discovery_models.RankingConfig, error) {
	return f.cfg, f.err
}

func (f *fakeConfigRepo) Update(_ context.Context, _ *discovery_models.RankingConfig) error {
	return f.err
}

func (f *fakeConfigRepo) GetAll(_ context.Context) ([]*discovery_models.RankingConfig, error) {
	return []*discovery_models.RankingConfig{f.cfg}, f.err
}

func (f *fakeConfigRepo) ReplaceAll(_ context.Context, _ []*discovery_models.RankingConfig) error {
	return f.err
}

func testItem(title, location, category string, ageDays int) discovery_models.ContentItem {
	created := time.Now().AddDate(0, 0, -ageDays)
	return discovery_models.ContentItem{
		ID:          primitive.NewObjectID(),
		Kind:        discovery_models.ItemKindItinerary,
		Title:       title,
		Location:    location,
		Categories:  []string{category},
		Public:      true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func entriesOf(items ...discovery_models.ContentItem) []discovery_models.CatalogEntry {
	entries := make([]discovery_models.CatalogEntry, len(items))
	for i, item := range items {
		entries[i] = discovery_models.CatalogEntry{Item: item}
	}
	return entries
}
