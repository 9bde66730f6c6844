package service

import (
	"context"
	"sort"

	"github.com/procuredash/backend-go/internal/cache"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/metrics"
	"github.com/procuredash/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
)

// InventoryService serves stock listings and the reorder advisor dashboard.
type InventoryService struct {
	repo  repository.InventoryRepository
	cache cache.ReorderDashboardCache
}

func NewInventoryService(repo repository.InventoryRepository, cacheImpl cache.ReorderDashboardCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopReorderDashboardCache()
	}
	return &InventoryService{repo: repo, cache: cacheImpl}
}

func (s *InventoryService) ListItems(ctx context.Context, search, category string, page, pageSize int) ([]domain.InventoryItem, int, error) {
	return s.repo.ListItems(ctx, search, category, page, pageSize)
}

// Forecast returns the demand forecast for a SKU, or nil when none exists.
func (s *InventoryService) Forecast(ctx context.Context, code string) (*domain.ForecastItem, error) {
	return s.repo.ForecastFor(ctx, code)
}

// ReorderDashboard computes a reorder recommendation for every SKU, ordered
// by urgency with the per-tier summary on top.
func (s *InventoryService) ReorderDashboard(ctx context.Context) (*domain.ReorderDashboard, error) {
	if dashboard, ok, err := s.cache.Get(ctx); err == nil && ok {
		return dashboard, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("inventory: cache get reorder dashboard failed")
	}

	items, err := s.repo.AllItems(ctx)
	if err != nil {
		return nil, err
	}

	reorderItems := make([]domain.ReorderItem, 0, len(items))
	for _, item := range items {
		input := metrics.ReorderInput{
			CurrentStock: item.Available(),
			DailyRate:    metrics.DailyRateFromMonthly(item.AvgMonthlyConsumption),
			LeadTimeDays: item.LeadTimeDays,
			SafetyStock:  item.SafetyStock,
			MinStock:     item.MinStock,
			MaxStock:     item.MaxStock,
			ReorderPoint: item.ReorderPoint,
		}

		forecast, err := s.repo.ForecastFor(ctx, item.Code)
		if err != nil {
			return nil, err
		}
		if forecast != nil {
			if next, ok := forecast.NextPeriodForecast(); ok {
				input.ForecastNext = next
				input.HasForecast = true
			}
		}

		rec, err := metrics.Recommend(input)
		if err != nil {
			log.Warn().Err(err).Str("code", item.Code).Msg("inventory: skipping unrecommendable item")
			continue
		}

		reorderItems = append(reorderItems, domain.ReorderItem{
			Item:              item,
			DaysUntilStockout: rec.DaysUntilStockout,
			NoStockoutRisk:    rec.NoStockoutRisk,
			Urgency:           string(rec.Urgency),
			SuggestedQty:      rec.SuggestedQty,
			Reason:            rec.Reason,
		})
	}

	sort.SliceStable(reorderItems, func(i, j int) bool {
		return domain.UrgencyRank(reorderItems[i].Urgency) < domain.UrgencyRank(reorderItems[j].Urgency)
	})

	counts := make(map[string]int, 4)
	for _, item := range reorderItems {
		counts[item.Urgency]++
	}
	summary := make([]domain.UrgencyCount, 0, 4)
	for _, urgency := range []metrics.Urgency{
		metrics.UrgencyCritical,
		metrics.UrgencyHigh,
		metrics.UrgencyMedium,
		metrics.UrgencyLow,
	} {
		summary = append(summary, domain.UrgencyCount{
			Urgency: string(urgency),
			Count:   counts[string(urgency)],
		})
	}

	dashboard := &domain.ReorderDashboard{
		Summary: summary,
		Items:   reorderItems,
	}

	if err := s.cache.Set(ctx, dashboard); err != nil {
		log.Warn().Err(err).Msg("inventory: cache set reorder dashboard failed")
	}

	return dashboard, nil
}
