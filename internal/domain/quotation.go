package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFQStatus is the lifecycle state of a request for quotation.
type RFQStatus string

const (
	RFQDraft      RFQStatus = "draft"
	RFQOpen       RFQStatus = "open"
	RFQEvaluation RFQStatus = "evaluation"
	RFQAwarded    RFQStatus = "awarded"
	RFQClosed     RFQStatus = "closed"
)

// RFQ represents a request for quotation sent to competing vendors.
type RFQ struct {
	ID          int64     `json:"id" db:"id"`
	Number      string    `json:"number" db:"number"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Status      RFQStatus `json:"status" db:"status"`
	IssueDate   time.Time `json:"issue_date" db:"issue_date"`
	DueDate     time.Time `json:"due_date" db:"due_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ComplianceStatus is the categorical compliance check outcome for a quote.
// It gates award eligibility but never alters the numeric score.
type ComplianceStatus string

const (
	CompliantFull    ComplianceStatus = "compliant"
	CompliantPartial ComplianceStatus = "partial"
	NonCompliant     ComplianceStatus = "non-compliant"
)

// Quotation represents one vendor's quote against an RFQ.
// Quality and performance scores are on a 0-100 scale.
type Quotation struct {
	ID               int64            `json:"id" db:"id"`
	RFQID            int64            `json:"rfq_id" db:"rfq_id"`
	VendorID         int64            `json:"vendor_id" db:"vendor_id"`
	VendorCode       string           `json:"vendor_code" db:"vendor_code"`
	VendorName       string           `json:"vendor_name" db:"vendor_name"`
	UnitPrice        decimal.Decimal  `json:"unit_price" db:"unit_price"`
	LeadTimeDays     int              `json:"lead_time_days" db:"lead_time_days"`
	QualityScore     float64          `json:"quality_score" db:"quality_score"`
	PerformanceScore float64          `json:"performance_score" db:"performance_score"`
	Compliance       ComplianceStatus `json:"compliance" db:"compliance"`
	ValidUntil       time.Time        `json:"valid_until" db:"valid_until"`
	SubmittedAt      time.Time        `json:"submitted_at" db:"submitted_at"`
}

// POStatus is the lifecycle state of a purchase order.
type POStatus string

const (
	PODraft      POStatus = "draft"
	POPending    POStatus = "pending"
	POApproved   POStatus = "approved"
	PODispatched POStatus = "dispatched"
	PODelivered  POStatus = "delivered"
	POCancelled  POStatus = "cancelled"
)

// PurchaseOrder represents an order placed with a vendor.
type PurchaseOrder struct {
	ID           int64           `json:"id" db:"id"`
	Number       string          `json:"number" db:"number"`
	VendorID     int64           `json:"vendor_id" db:"vendor_id"`
	VendorName   string          `json:"vendor_name" db:"vendor_name"`
	Status       POStatus        `json:"status" db:"status"`
	OrderDate    time.Time       `json:"order_date" db:"order_date"`
	ExpectedDate time.Time       `json:"expected_date" db:"expected_date"`
	TotalAmount  decimal.Decimal `json:"total_amount" db:"total_amount"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// ShipmentStatus is the tracking state of an inbound shipment.
type ShipmentStatus string

const (
	ShipmentPending        ShipmentStatus = "pending"
	ShipmentPickedUp       ShipmentStatus = "picked_up"
	ShipmentInTransit      ShipmentStatus = "in_transit"
	ShipmentOutForDelivery ShipmentStatus = "out_for_delivery"
	ShipmentDelivered      ShipmentStatus = "delivered"
)

// Shipment represents an inbound shipment against a purchase order.
// Delayed is a parallel flag, not a lifecycle state.
type Shipment struct {
	ID             int64          `json:"id" db:"id"`
	PONumber       string         `json:"po_number" db:"po_number"`
	Carrier        string         `json:"carrier" db:"carrier"`
	TrackingNumber string         `json:"tracking_number" db:"tracking_number"`
	Status         ShipmentStatus `json:"status" db:"status"`
	Delayed        bool           `json:"delayed" db:"delayed"`
	ExpectedAt     time.Time      `json:"expected_at" db:"expected_at"`
	DeliveredAt    *time.Time     `json:"delivered_at,omitempty" db:"delivered_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}
