package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/procuredash/backend-go/internal/domain"
)

type inventoryRepository struct {
	db *DB
}

func NewInventoryRepository(db *DB) *inventoryRepository {
	return &inventoryRepository{db: db}
}

const inventoryColumns = `
    id, code, name, category, unit, on_hand, reserved,
    min_stock, max_stock, safety_stock, reorder_point,
    avg_monthly_consumption, lead_time_days, unit_cost,
    age_0_30, age_31_60, age_61_90, age_over_90, updated_at
`

func (r *inventoryRepository) ListItems(ctx context.Context, search, category string, page, pageSize int) ([]domain.InventoryItem, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		clauses []string
		args    []interface{}
	)
	if search != "" {
		args = append(args, "%"+strings.TrimSpace(search)+"%")
		clauses = append(clauses, fmt.Sprintf("(code ILIKE $%d OR name ILIKE $%d)", len(args), len(args)))
	}
	if category != "" {
		args = append(args, category)
		clauses = append(clauses, fmt.Sprintf("category = $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf(`SELECT COUNT(*) FROM inventory_items %s`, where), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM inventory_items
        %s
        ORDER BY code ASC
        LIMIT $%d OFFSET $%d
    `, inventoryColumns, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	items := []domain.InventoryItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return items, total, nil
}

func (r *inventoryRepository) AllItems(ctx context.Context) ([]domain.InventoryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items ORDER BY code ASC`, inventoryColumns)

	items := []domain.InventoryItem{}
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to fetch inventory items: %w", err)
	}
	return items, nil
}

func (r *inventoryRepository) ForecastFor(ctx context.Context, code string) (*domain.ForecastItem, error) {
	query := `
        SELECT id, code, name, current_stock, avg_monthly_consumption,
               lead_time_days, safety_stock, confidence_pct, trend, seasonality
        FROM forecast_items
        WHERE code = $1
    `
	var item domain.ForecastItem
	if err := r.db.GetContext(ctx, &item, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", code, err)
	}

	historyQuery := `
        SELECT month, consumption
        FROM forecast_history
        WHERE forecast_item_id = $1
        ORDER BY month ASC
    `
	if err := r.db.SelectContext(ctx, &item.History, historyQuery, item.ID); err != nil {
		return nil, fmt.Errorf("failed to fetch consumption history for %s: %w", code, err)
	}

	pointsQuery := `
        SELECT month, predicted, lower_bound, upper_bound
        FROM forecast_points
        WHERE forecast_item_id = $1
        ORDER BY month ASC
    `
	if err := r.db.SelectContext(ctx, &item.Forecast, pointsQuery, item.ID); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast points for %s: %w", code, err)
	}

	return &item, nil
}
