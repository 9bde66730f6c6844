package service

import (
	"context"
	"testing"

	"github.com/procuredash/backend-go/internal/domain"
)

type fakeInventoryRepo struct {
	items     []domain.InventoryItem
	forecasts map[string]*domain.ForecastItem
}

func (f *fakeInventoryRepo) ListItems(ctx context.Context, search, category string, page, pageSize int) ([]domain.InventoryItem, int, error) {
	return f.items, len(f.items), nil
}

func (f *fakeInventoryRepo) AllItems(ctx context.Context) ([]domain.InventoryItem, error) {
	return f.items, nil
}

func (f *fakeInventoryRepo) ForecastFor(ctx context.Context, code string) (*domain.ForecastItem, error) {
	return f.forecasts[code], nil
}

func TestReorderDashboardOrdersCriticalFirst(t *testing.T) {
	repo := &fakeInventoryRepo{
		items: []domain.InventoryItem{
			{Code: "SLOW", OnHand: 900, MaxStock: 1200, ReorderPoint: 100, AvgMonthlyConsumption: 30, LeadTimeDays: 7},
			{Code: "URGENT", OnHand: 10, MaxStock: 500, ReorderPoint: 100, AvgMonthlyConsumption: 120, LeadTimeDays: 7},
			{Code: "IDLE", OnHand: 50, MaxStock: 300, AvgMonthlyConsumption: 0, LeadTimeDays: 5},
		},
	}
	svc := NewInventoryService(repo, nil)

	dashboard, err := svc.ReorderDashboard(context.Background())
	if err != nil {
		t.Fatalf("ReorderDashboard returned error: %v", err)
	}

	if len(dashboard.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(dashboard.Items))
	}
	if dashboard.Items[0].Item.Code != "URGENT" {
		t.Errorf("expected URGENT first, got %s", dashboard.Items[0].Item.Code)
	}
	if dashboard.Items[0].Urgency != "critical" {
		t.Errorf("expected critical urgency, got %s", dashboard.Items[0].Urgency)
	}

	idle := dashboard.Items[len(dashboard.Items)-1]
	if idle.Item.Code != "IDLE" || !idle.NoStockoutRisk {
		t.Errorf("expected IDLE last with no stockout risk, got %s (risk-free=%v)", idle.Item.Code, idle.NoStockoutRisk)
	}
}

func TestReorderDashboardSummaryCounts(t *testing.T) {
	repo := &fakeInventoryRepo{
		items: []domain.InventoryItem{
			{Code: "A", OnHand: 5, ReorderPoint: 50, AvgMonthlyConsumption: 150, LeadTimeDays: 10},
			{Code: "B", OnHand: 10, ReorderPoint: 50, AvgMonthlyConsumption: 150, LeadTimeDays: 10},
			{Code: "C", OnHand: 5000, MaxStock: 6000, ReorderPoint: 100, AvgMonthlyConsumption: 30, LeadTimeDays: 3},
		},
	}
	svc := NewInventoryService(repo, nil)

	dashboard, err := svc.ReorderDashboard(context.Background())
	if err != nil {
		t.Fatalf("ReorderDashboard returned error: %v", err)
	}

	want := map[string]int{"critical": 2, "high": 0, "medium": 0, "low": 1}
	if len(dashboard.Summary) != 4 {
		t.Fatalf("expected 4 summary rows, got %d", len(dashboard.Summary))
	}
	for _, row := range dashboard.Summary {
		if row.Count != want[row.Urgency] {
			t.Errorf("urgency %s: count = %d, want %d", row.Urgency, row.Count, want[row.Urgency])
		}
	}
}

func TestReorderDashboardUsesForecastQty(t *testing.T) {
	repo := &fakeInventoryRepo{
		items: []domain.InventoryItem{
			{Code: "FC", OnHand: 80, MaxStock: 1000, SafetyStock: 50, ReorderPoint: 250, AvgMonthlyConsumption: 750, LeadTimeDays: 3},
		},
		forecasts: map[string]*domain.ForecastItem{
			"FC": {
				Code:     "FC",
				Forecast: []domain.ForecastPoint{{Month: "2026-03", Predicted: 100}},
			},
		},
	}
	svc := NewInventoryService(repo, nil)

	dashboard, err := svc.ReorderDashboard(context.Background())
	if err != nil {
		t.Fatalf("ReorderDashboard returned error: %v", err)
	}

	// ceil(100*1.2) + 50 safety stock
	if got := dashboard.Items[0].SuggestedQty; got != 170 {
		t.Errorf("SuggestedQty = %d, want 170", got)
	}
}

func TestReorderDashboardReservedStockExcluded(t *testing.T) {
	repo := &fakeInventoryRepo{
		items: []domain.InventoryItem{
			// 900 on hand but 880 reserved leaves 20 available, inside lead time.
			{Code: "RSV", OnHand: 900, Reserved: 880, MaxStock: 1200, ReorderPoint: 100, AvgMonthlyConsumption: 120, LeadTimeDays: 7},
		},
	}
	svc := NewInventoryService(repo, nil)

	dashboard, err := svc.ReorderDashboard(context.Background())
	if err != nil {
		t.Fatalf("ReorderDashboard returned error: %v", err)
	}

	if got := dashboard.Items[0].Urgency; got != "critical" {
		t.Errorf("urgency = %s, want critical when reserved stock is excluded", got)
	}
}
