package metrics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyInvoice_Buckets(t *testing.T) {
	today := date(2026, time.March, 15)

	tests := []struct {
		name        string
		dueDate     time.Time
		wantBucket  string
		wantOverdue int
	}{
		{"due in the future", date(2026, time.April, 1), BucketCurrent, 0},
		{"due today", today, BucketCurrent, 0},
		{"one day overdue", date(2026, time.March, 14), Bucket0to30, 1},
		{"thirty days overdue", date(2026, time.February, 13), Bucket0to30, 30},
		{"thirty-one days overdue", date(2026, time.February, 12), Bucket31to60, 31},
		{"sixty days overdue", date(2026, time.January, 14), Bucket31to60, 60},
		{"ninety days overdue", date(2025, time.December, 15), Bucket61to90, 90},
		{"ninety-one days overdue", date(2025, time.December, 14), BucketOver90, 91},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ClassifyInvoice(AgingInput{
				DueDate:    tt.dueDate,
				Today:      today,
				Amount:     decimal.NewFromInt(1000),
				PaidAmount: decimal.Zero,
			})
			if err != nil {
				t.Fatalf("ClassifyInvoice failed: %v", err)
			}
			if result.Bucket != tt.wantBucket {
				t.Errorf("bucket = %s, want %s", result.Bucket, tt.wantBucket)
			}
			if result.OverdueDays != tt.wantOverdue {
				t.Errorf("overdue days = %d, want %d", result.OverdueDays, tt.wantOverdue)
			}
		})
	}
}

func TestClassifyInvoice_AccruedInterest(t *testing.T) {
	// 45 days overdue, amount 100000, rate 1.5%/month:
	// 100000 * 1.5 * 45 / 100 / 30 = 2250.
	today := date(2026, time.March, 15)
	due := today.AddDate(0, 0, -45)

	result, err := ClassifyInvoice(AgingInput{
		DueDate:        due,
		Today:          today,
		Amount:         decimal.NewFromInt(100000),
		PaidAmount:     decimal.Zero,
		MonthlyRatePct: decimal.NewFromFloat(1.5),
	})
	if err != nil {
		t.Fatalf("ClassifyInvoice failed: %v", err)
	}

	if result.Bucket != Bucket31to60 {
		t.Errorf("bucket = %s, want %s", result.Bucket, Bucket31to60)
	}
	if want := decimal.NewFromInt(2250); !result.Interest.Equal(want) {
		t.Errorf("interest = %s, want %s", result.Interest, want)
	}
	if want := decimal.NewFromInt(100000); !result.Outstanding.Equal(want) {
		t.Errorf("outstanding = %s, want %s", result.Outstanding, want)
	}
}

func TestClassifyInvoice_PaidSuppressed(t *testing.T) {
	result, err := ClassifyInvoice(AgingInput{
		DueDate:        date(2025, time.January, 1),
		Today:          date(2026, time.March, 15),
		Amount:         decimal.NewFromInt(5000),
		PaidAmount:     decimal.NewFromInt(5000),
		Paid:           true,
		MonthlyRatePct: decimal.NewFromFloat(2),
	})
	if err != nil {
		t.Fatalf("ClassifyInvoice failed: %v", err)
	}

	if result.Bucket != BucketPaid {
		t.Errorf("bucket = %s, want paid", result.Bucket)
	}
	if !result.Outstanding.IsZero() || !result.Interest.IsZero() {
		t.Errorf("paid invoice carries outstanding %s interest %s, want zero", result.Outstanding, result.Interest)
	}
}

func TestClassifyInvoice_PartialPayment(t *testing.T) {
	result, err := ClassifyInvoice(AgingInput{
		DueDate:    date(2026, time.March, 1),
		Today:      date(2026, time.March, 15),
		Amount:     decimal.NewFromInt(10000),
		PaidAmount: decimal.NewFromInt(4000),
	})
	if err != nil {
		t.Fatalf("ClassifyInvoice failed: %v", err)
	}
	if want := decimal.NewFromInt(6000); !result.Outstanding.Equal(want) {
		t.Errorf("outstanding = %s, want %s", result.Outstanding, want)
	}
}

// Buckets must partition non-paid invoices exhaustively and the bucket sums
// must equal the total outstanding.
func TestClassifyInvoice_PartitionInvariant(t *testing.T) {
	today := date(2026, time.March, 15)

	overdueOffsets := []int{-10, 0, 1, 15, 30, 31, 45, 60, 61, 90, 91, 200}
	bucketTotals := map[string]decimal.Decimal{}
	total := decimal.Zero

	for i, offset := range overdueOffsets {
		amount := decimal.NewFromInt(int64(1000 * (i + 1)))
		result, err := ClassifyInvoice(AgingInput{
			DueDate:    today.AddDate(0, 0, -offset),
			Today:      today,
			Amount:     amount,
			PaidAmount: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("ClassifyInvoice failed: %v", err)
		}

		found := false
		for _, b := range AgingBuckets {
			if result.Bucket == b {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("bucket %s is not one of the aging buckets", result.Bucket)
		}

		bucketTotals[result.Bucket] = bucketTotals[result.Bucket].Add(result.Outstanding)
		total = total.Add(amount)
	}

	sum := decimal.Zero
	for _, v := range bucketTotals {
		sum = sum.Add(v)
	}
	if !sum.Equal(total) {
		t.Errorf("bucket totals sum to %s, want %s", sum, total)
	}
}

func TestClassifyInvoice_RejectsBadInput(t *testing.T) {
	if _, err := ClassifyInvoice(AgingInput{Today: date(2026, time.March, 15)}); err == nil {
		t.Error("expected error for missing due date")
	}
	if _, err := ClassifyInvoice(AgingInput{
		DueDate:        date(2026, time.March, 1),
		Today:          date(2026, time.March, 15),
		MonthlyRatePct: decimal.NewFromInt(-1),
	}); err == nil {
		t.Error("expected error for negative interest rate")
	}
}
