package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem represents current stock state and replenishment thresholds
// for a single SKU.
type InventoryItem struct {
	ID                    int64           `json:"id" db:"id"`
	Code                  string          `json:"code" db:"code"`
	Name                  string          `json:"name" db:"name"`
	Category              string          `json:"category" db:"category"`
	Unit                  string          `json:"unit" db:"unit"`
	OnHand                int             `json:"on_hand" db:"on_hand"`
	Reserved              int             `json:"reserved" db:"reserved"`
	MinStock              int             `json:"min_stock" db:"min_stock"`
	MaxStock              int             `json:"max_stock" db:"max_stock"`
	SafetyStock           int             `json:"safety_stock" db:"safety_stock"`
	ReorderPoint          int             `json:"reorder_point" db:"reorder_point"`
	AvgMonthlyConsumption float64         `json:"avg_monthly_consumption" db:"avg_monthly_consumption"`
	LeadTimeDays          int             `json:"lead_time_days" db:"lead_time_days"`
	UnitCost              decimal.Decimal `json:"unit_cost" db:"unit_cost"`
	Age0to30              int             `json:"age_0_30" db:"age_0_30"`
	Age31to60             int             `json:"age_31_60" db:"age_31_60"`
	Age61to90             int             `json:"age_61_90" db:"age_61_90"`
	AgeOver90             int             `json:"age_over_90" db:"age_over_90"`
	UpdatedAt             time.Time       `json:"updated_at" db:"updated_at"`
}

// Available returns on-hand stock net of reservations, clamped at zero.
func (i *InventoryItem) Available() int {
	avail := i.OnHand - i.Reserved
	if avail < 0 {
		return 0
	}
	return avail
}

// ConsumptionPoint is one month of historical consumption.
type ConsumptionPoint struct {
	Month       string  `json:"month" db:"month"`
	Consumption float64 `json:"consumption" db:"consumption"`
}

// ForecastPoint is one month of predicted consumption with bounds.
type ForecastPoint struct {
	Month      string  `json:"month" db:"month"`
	Predicted  float64 `json:"predicted" db:"predicted"`
	LowerBound float64 `json:"lower_bound" db:"lower_bound"`
	UpperBound float64 `json:"upper_bound" db:"upper_bound"`
}

// ForecastItem carries the demand forecast for a SKU alongside its current
// stock and lead-time parameters.
type ForecastItem struct {
	ID                    int64              `json:"id" db:"id"`
	Code                  string             `json:"code" db:"code"`
	Name                  string             `json:"name" db:"name"`
	CurrentStock          int                `json:"current_stock" db:"current_stock"`
	AvgMonthlyConsumption float64            `json:"avg_monthly_consumption" db:"avg_monthly_consumption"`
	LeadTimeDays          int                `json:"lead_time_days" db:"lead_time_days"`
	SafetyStock           int                `json:"safety_stock" db:"safety_stock"`
	ConfidencePct         float64            `json:"confidence_pct" db:"confidence_pct"`
	Trend                 string             `json:"trend" db:"trend"`
	Seasonality           string             `json:"seasonality" db:"seasonality"`
	History               []ConsumptionPoint `json:"history" db:"-"`
	Forecast              []ForecastPoint    `json:"forecast" db:"-"`
}

// NextPeriodForecast returns the first forecast point's prediction, or false
// when no forecast series exists.
func (f *ForecastItem) NextPeriodForecast() (float64, bool) {
	if len(f.Forecast) == 0 {
		return 0, false
	}
	return f.Forecast[0].Predicted, true
}
