package metrics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Aging bucket labels. Paid invoices carry BucketPaid and are excluded from
// aging totals.
const (
	BucketPaid    = "paid"
	BucketCurrent = "current"
	Bucket0to30   = "0-30"
	Bucket31to60  = "31-60"
	Bucket61to90  = "61-90"
	BucketOver90  = "90+"
)

// AgingBuckets lists the non-paid buckets in display order.
var AgingBuckets = []string{BucketCurrent, Bucket0to30, Bucket31to60, Bucket61to90, BucketOver90}

// AgingInput holds the fields needed to classify one invoice.
// MonthlyRatePct is a monthly simple-interest percentage.
type AgingInput struct {
	DueDate        time.Time
	Today          time.Time
	Amount         decimal.Decimal
	PaidAmount     decimal.Decimal
	Paid           bool
	MonthlyRatePct decimal.Decimal
}

// AgingResult is the classification output for one invoice.
type AgingResult struct {
	Bucket      string
	OverdueDays int
	Outstanding decimal.Decimal
	Interest    decimal.Decimal
}

var daysPerMonth = decimal.NewFromInt(30)
var hundred = decimal.NewFromInt(100)

// ClassifyInvoice buckets an invoice by overdue days and computes outstanding
// balance and simple accrued interest, pro-rated over a 30-day month.
func ClassifyInvoice(in AgingInput) (AgingResult, error) {
	if in.Today.IsZero() || in.DueDate.IsZero() {
		return AgingResult{}, fmt.Errorf("aging input missing due date or reference date")
	}
	if in.MonthlyRatePct.IsNegative() {
		return AgingResult{}, fmt.Errorf("negative interest rate %s", in.MonthlyRatePct)
	}

	outstanding := in.Amount.Sub(in.PaidAmount)

	if in.Paid {
		return AgingResult{Bucket: BucketPaid, Outstanding: decimal.Zero, Interest: decimal.Zero}, nil
	}

	overdueDays := daysBetween(in.DueDate, in.Today)
	if overdueDays < 0 {
		overdueDays = 0
	}

	result := AgingResult{
		Bucket:      bucketFor(overdueDays),
		OverdueDays: overdueDays,
		Outstanding: outstanding,
	}

	// outstanding * rate% * overdueDays / 30-day month
	result.Interest = outstanding.
		Mul(in.MonthlyRatePct).
		Mul(decimal.NewFromInt(int64(overdueDays))).
		Div(hundred).
		Div(daysPerMonth)

	return result, nil
}

// bucketFor maps overdue days to a bucket label. Upper bounds are inclusive.
func bucketFor(overdueDays int) string {
	switch {
	case overdueDays == 0:
		return BucketCurrent
	case overdueDays <= 30:
		return Bucket0to30
	case overdueDays <= 60:
		return Bucket31to60
	case overdueDays <= 90:
		return Bucket61to90
	default:
		return BucketOver90
	}
}

// daysBetween counts whole calendar days from a to b, negative when b is
// before a. Both instants are truncated to their calendar date in UTC.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
