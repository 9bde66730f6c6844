package metrics

import (
	"fmt"
	"math"
	"sort"
)

// Urgency classifies how soon a replenishment order is needed.
type Urgency string

const (
	UrgencyCritical Urgency = "critical"
	UrgencyHigh     Urgency = "high"
	UrgencyMedium   Urgency = "medium"
	UrgencyLow      Urgency = "low"
)

var urgencySeverity = map[Urgency]int{
	UrgencyCritical: 0,
	UrgencyHigh:     1,
	UrgencyMedium:   2,
	UrgencyLow:      3,
}

// ReorderInput holds the stock state and thresholds for one SKU.
// DailyRate is the average daily consumption; callers holding a monthly
// figure normalize it with DailyRateFromMonthly first.
type ReorderInput struct {
	CurrentStock int
	DailyRate    float64
	LeadTimeDays int
	SafetyStock  int
	MinStock     int
	MaxStock     int
	ReorderPoint int

	// ForecastNext is the predicted consumption for the next period.
	// Only used when HasForecast is true.
	ForecastNext float64
	HasForecast  bool
}

// Recommendation is the reorder advisor output for one SKU.
// When NoStockoutRisk is true there is no consumption and the stockout
// horizon is unbounded; DaysUntilStockout is zero and must be ignored.
type Recommendation struct {
	DaysUntilStockout int
	NoStockoutRisk    bool
	Urgency           Urgency
	SuggestedQty      int
	Reason            string
}

// DailyRateFromMonthly converts an average monthly consumption figure to a
// daily rate over a 30-day month.
func DailyRateFromMonthly(monthly float64) float64 {
	return monthly / 30
}

// Recommend computes the reorder recommendation for a single SKU.
//
// Urgency uses the reorder-point scheme: critical when the stockout horizon
// is inside the lead time, otherwise tiered by days until the stock level
// reaches the reorder point (high <= 7, medium <= 14, else low).
func Recommend(in ReorderInput) (Recommendation, error) {
	if !isFinite(in.DailyRate) || !isFinite(in.ForecastNext) {
		return Recommendation{}, fmt.Errorf("non-finite consumption rate or forecast")
	}

	stock := in.CurrentStock
	if stock < 0 {
		stock = 0
	}

	rec := Recommendation{}

	if in.DailyRate <= 0 {
		rec.NoStockoutRisk = true
		rec.Urgency = UrgencyLow
		rec.Reason = "no recorded consumption, stockout horizon unbounded"
		return rec, nil
	}

	rec.DaysUntilStockout = int(math.Floor(float64(stock) / in.DailyRate))

	switch {
	case rec.DaysUntilStockout <= in.LeadTimeDays:
		rec.Urgency = UrgencyCritical
		rec.Reason = fmt.Sprintf("stock runs out in %d days, inside the %d day lead time", rec.DaysUntilStockout, in.LeadTimeDays)
	default:
		daysToReorderPoint := 0
		if stock > in.ReorderPoint {
			daysToReorderPoint = int(math.Floor(float64(stock-in.ReorderPoint) / in.DailyRate))
		}
		switch {
		case daysToReorderPoint <= 7:
			rec.Urgency = UrgencyHigh
			rec.Reason = fmt.Sprintf("reorder point reached in %d days", daysToReorderPoint)
		case daysToReorderPoint <= 14:
			rec.Urgency = UrgencyMedium
			rec.Reason = fmt.Sprintf("reorder point reached in %d days", daysToReorderPoint)
		default:
			rec.Urgency = UrgencyLow
			rec.Reason = fmt.Sprintf("reorder point reached in %d days", daysToReorderPoint)
		}
	}

	rec.SuggestedQty = suggestedQty(in, stock)

	return rec, nil
}

// suggestedQty picks forecast-driven sizing with a 20% buffer when a forecast
// series exists, otherwise tops up to max stock.
func suggestedQty(in ReorderInput, stock int) int {
	if in.HasForecast {
		qty := int(math.Ceil(in.ForecastNext*1.2 + float64(in.SafetyStock)))
		if qty < 0 {
			return 0
		}
		return qty
	}

	qty := in.MaxStock - stock
	if qty < 0 {
		return 0
	}
	return qty
}

// SortByUrgency orders recommendations by descending severity, critical
// first. The sort is stable so ties keep input order.
func SortByUrgency(recs []Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		return urgencySeverity[recs[i].Urgency] < urgencySeverity[recs[j].Urgency]
	})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
