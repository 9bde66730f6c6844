package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the settlement state of a vendor invoice.
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "pending"
	InvoicePartial  InvoiceStatus = "partial"
	InvoicePaid     InvoiceStatus = "paid"
	InvoiceOverdue  InvoiceStatus = "overdue"
	InvoiceDisputed InvoiceStatus = "disputed"
)

// Invoice represents a vendor invoice tracked for aging and accrued interest.
// MonthlyInterestPct is a monthly percentage, pro-rated over a 30-day month.
type Invoice struct {
	ID                 int64           `json:"id" db:"id"`
	Number             string          `json:"number" db:"number"`
	VendorID           int64           `json:"vendor_id" db:"vendor_id"`
	VendorName         string          `json:"vendor_name" db:"vendor_name"`
	PONumber           string          `json:"po_number" db:"po_number"`
	InvoiceDate        time.Time       `json:"invoice_date" db:"invoice_date"`
	DueDate            time.Time       `json:"due_date" db:"due_date"`
	Amount             decimal.Decimal `json:"amount" db:"amount"`
	PaidAmount         decimal.Decimal `json:"paid_amount" db:"paid_amount"`
	Status             InvoiceStatus   `json:"status" db:"status"`
	PaymentTerms       string          `json:"payment_terms" db:"payment_terms"`
	MonthlyInterestPct decimal.Decimal `json:"monthly_interest_pct" db:"monthly_interest_pct"`
	Description        string          `json:"description" db:"description"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}
