package metrics

import (
	"math"
	"testing"
)

func TestRecommend_StockoutMath(t *testing.T) {
	// 450 units at 120/month -> 4/day -> 112 days of cover.
	in := ReorderInput{
		CurrentStock: 450,
		DailyRate:    DailyRateFromMonthly(120),
		LeadTimeDays: 14,
		ReorderPoint: 100,
		MaxStock:     600,
	}

	rec, err := Recommend(in)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	if rec.DaysUntilStockout != 112 {
		t.Errorf("DaysUntilStockout = %d, want 112", rec.DaysUntilStockout)
	}
	if rec.Urgency == UrgencyCritical {
		t.Errorf("urgency = critical, but 112 days of cover exceeds 14 day lead time")
	}
	// 350 units above the reorder point at 4/day -> 87 days -> low.
	if rec.Urgency != UrgencyLow {
		t.Errorf("urgency = %s, want low", rec.Urgency)
	}
}

func TestRecommend_ZeroStockIsCritical(t *testing.T) {
	for _, leadTime := range []int{0, 7, 30} {
		rec, err := Recommend(ReorderInput{
			CurrentStock: 0,
			DailyRate:    2.5,
			LeadTimeDays: leadTime,
		})
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}
		if rec.DaysUntilStockout != 0 {
			t.Errorf("lead time %d: DaysUntilStockout = %d, want 0", leadTime, rec.DaysUntilStockout)
		}
		if rec.Urgency != UrgencyCritical {
			t.Errorf("lead time %d: urgency = %s, want critical", leadTime, rec.Urgency)
		}
	}
}

func TestRecommend_ZeroConsumptionHasNoRisk(t *testing.T) {
	rec, err := Recommend(ReorderInput{
		CurrentStock: 10,
		DailyRate:    0,
		LeadTimeDays: 14,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if !rec.NoStockoutRisk {
		t.Error("expected NoStockoutRisk for zero consumption")
	}
	if rec.Urgency != UrgencyLow {
		t.Errorf("urgency = %s, want low", rec.Urgency)
	}
}

func TestRecommend_UrgencyTiers(t *testing.T) {
	tests := []struct {
		name string
		in   ReorderInput
		want Urgency
	}{
		{
			name: "inside lead time",
			in:   ReorderInput{CurrentStock: 20, DailyRate: 2, LeadTimeDays: 14},
			want: UrgencyCritical,
		},
		{
			name: "reorder point within a week",
			in:   ReorderInput{CurrentStock: 110, DailyRate: 2, LeadTimeDays: 14, ReorderPoint: 100},
			want: UrgencyHigh,
		},
		{
			name: "reorder point within two weeks",
			in:   ReorderInput{CurrentStock: 124, DailyRate: 2, LeadTimeDays: 14, ReorderPoint: 100},
			want: UrgencyMedium,
		},
		{
			name: "comfortable cover",
			in:   ReorderInput{CurrentStock: 300, DailyRate: 2, LeadTimeDays: 14, ReorderPoint: 100},
			want: UrgencyLow,
		},
		{
			name: "already below reorder point but outside lead time",
			in:   ReorderInput{CurrentStock: 90, DailyRate: 2, LeadTimeDays: 14, ReorderPoint: 100},
			want: UrgencyHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Recommend(tt.in)
			if err != nil {
				t.Fatalf("Recommend failed: %v", err)
			}
			if rec.Urgency != tt.want {
				t.Errorf("urgency = %s, want %s", rec.Urgency, tt.want)
			}
		})
	}
}

func TestRecommend_SuggestedQty(t *testing.T) {
	// Top-up to max when no forecast exists.
	rec, err := Recommend(ReorderInput{CurrentStock: 150, DailyRate: 5, MaxStock: 600})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.SuggestedQty != 450 {
		t.Errorf("top-up SuggestedQty = %d, want 450", rec.SuggestedQty)
	}

	// Forecast-driven: ceil(100 * 1.2 + 30) = 150.
	rec, err = Recommend(ReorderInput{
		CurrentStock: 150,
		DailyRate:    5,
		MaxStock:     600,
		SafetyStock:  30,
		ForecastNext: 100,
		HasForecast:  true,
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.SuggestedQty != 150 {
		t.Errorf("forecast SuggestedQty = %d, want 150", rec.SuggestedQty)
	}

	// Over-stocked item never suggests a negative order.
	rec, err = Recommend(ReorderInput{CurrentStock: 700, DailyRate: 5, MaxStock: 600})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if rec.SuggestedQty != 0 {
		t.Errorf("over-stocked SuggestedQty = %d, want 0", rec.SuggestedQty)
	}
}

func TestRecommend_RejectsNonFiniteInput(t *testing.T) {
	if _, err := Recommend(ReorderInput{CurrentStock: 10, DailyRate: math.NaN()}); err == nil {
		t.Error("expected error for NaN daily rate")
	}
	if _, err := Recommend(ReorderInput{CurrentStock: 10, DailyRate: 1, ForecastNext: math.Inf(1), HasForecast: true}); err == nil {
		t.Error("expected error for infinite forecast")
	}
}

func TestSortByUrgency(t *testing.T) {
	recs := []Recommendation{
		{Urgency: UrgencyLow, Reason: "a"},
		{Urgency: UrgencyCritical, Reason: "b"},
		{Urgency: UrgencyMedium, Reason: "c"},
		{Urgency: UrgencyCritical, Reason: "d"},
		{Urgency: UrgencyHigh, Reason: "e"},
	}

	SortByUrgency(recs)

	wantOrder := []string{"b", "d", "e", "c", "a"}
	for i, want := range wantOrder {
		if recs[i].Reason != want {
			t.Errorf("position %d = %s, want %s", i, recs[i].Reason, want)
		}
	}
}
