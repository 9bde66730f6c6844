package domain

import "github.com/shopspring/decimal"

// AgingBucketTotal is one row of the finance aging report.
type AgingBucketTotal struct {
	Bucket      string          `json:"bucket"`
	Count       int             `json:"count"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Interest    decimal.Decimal `json:"interest"`
}

// AgingReport aggregates invoice aging across all non-paid invoices.
// The bucket totals always sum to TotalOutstanding.
type AgingReport struct {
	Buckets          []AgingBucketTotal `json:"buckets"`
	TotalOutstanding decimal.Decimal    `json:"total_outstanding"`
	TotalInterest    decimal.Decimal    `json:"total_interest"`
}

// InvoiceAgingItem is one classified invoice row in the aging table.
type InvoiceAgingItem struct {
	Invoice     Invoice         `json:"invoice"`
	Bucket      string          `json:"bucket"`
	OverdueDays int             `json:"overdue_days"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Interest    decimal.Decimal `json:"interest"`
}

// InvoiceAgingResponse is the paginated aging table response.
type InvoiceAgingResponse struct {
	Items      []InvoiceAgingItem `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// UrgencyCount is the per-urgency tally on the reorder dashboard.
type UrgencyCount struct {
	Urgency string `json:"urgency"`
	Count   int    `json:"count"`
}

// ReorderItem pairs an inventory item with its reorder recommendation.
type ReorderItem struct {
	Item              InventoryItem `json:"item"`
	DaysUntilStockout int           `json:"days_until_stockout"`
	NoStockoutRisk    bool          `json:"no_stockout_risk"`
	Urgency           string        `json:"urgency"`
	SuggestedQty      int           `json:"suggested_qty"`
	Reason            string        `json:"reason"`
}

// ReorderDashboard is the reorder advisor summary served to the dashboard.
type ReorderDashboard struct {
	Summary []UrgencyCount `json:"summary"`
	Items   []ReorderItem  `json:"items"`
}

// QuoteScore is one vendor's scored quotation in an RFQ comparison.
type QuoteScore struct {
	Quotation      Quotation `json:"quotation"`
	WeightedScore  float64   `json:"weighted_score"`
	Rank           string    `json:"rank"`
	AwardEligible  bool      `json:"award_eligible"`
	LowestPrice    bool      `json:"lowest_price"`
	ShortestLead   bool      `json:"shortest_lead"`
	HighestQuality bool      `json:"highest_quality"`
}

// QuoteComparison is the full scored comparison for an RFQ.
type QuoteComparison struct {
	RFQID  int64        `json:"rfq_id"`
	Quotes []QuoteScore `json:"quotes"`
}

// VendorListResponse is the paginated vendor list response.
type VendorListResponse struct {
	Items      []Vendor `json:"items"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}

// VendorScorecard is the derived performance/risk view of a vendor.
type VendorScorecard struct {
	VendorID       int64    `json:"vendor_id"`
	OverallPct     float64  `json:"overall_pct"`
	QualityPct     float64  `json:"quality_pct"`
	DeliveryPct    float64  `json:"delivery_pct"`
	SLAPct         float64  `json:"sla_pct"`
	RiskTier       RiskTier `json:"risk_tier"`
	RiskOverridden bool     `json:"risk_overridden"`
}

// WorkflowAction describes one action on the vendor workflow with its
// availability and, when disabled, the reason callers should surface.
type WorkflowAction struct {
	Action   string `json:"action"`
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}
