package repository

import (
	"context"

	"github.com/procuredash/backend-go/internal/domain"
)

// InventoryRepository reads stock state and demand forecasts.
type InventoryRepository interface {
	ListItems(ctx context.Context, search string, category string, page, pageSize int) ([]domain.InventoryItem, int, error)

	// AllItems returns the full inventory for the reorder dashboard.
	AllItems(ctx context.Context) ([]domain.InventoryItem, error)

	// ForecastFor returns the demand forecast for a SKU code, or nil when no
	// forecast series exists for it.
	ForecastFor(ctx context.Context, code string) (*domain.ForecastItem, error)
}
