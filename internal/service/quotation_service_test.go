package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/metrics"
	"github.com/shopspring/decimal"
)

type fakeQuotationRepo struct {
	rfqs   map[int64]*domain.RFQ
	quotes map[int64][]domain.Quotation
}

func (f *fakeQuotationRepo) GetRFQ(ctx context.Context, id int64) (*domain.RFQ, error) {
	rfq, ok := f.rfqs[id]
	if !ok {
		return nil, fmt.Errorf("rfq %d: %w", id, domain.ErrNotFound)
	}
	return rfq, nil
}

func (f *fakeQuotationRepo) ListRFQs(ctx context.Context, page, pageSize int) ([]domain.RFQ, int, error) {
	return nil, 0, nil
}

func (f *fakeQuotationRepo) QuotationsByRFQ(ctx context.Context, rfqID int64) ([]domain.Quotation, error) {
	return f.quotes[rfqID], nil
}

func (f *fakeQuotationRepo) ListPurchaseOrders(ctx context.Context, status domain.POStatus, page, pageSize int) ([]domain.PurchaseOrder, int, error) {
	return nil, 0, nil
}

func (f *fakeQuotationRepo) ListShipments(ctx context.Context, page, pageSize int) ([]domain.Shipment, int, error) {
	return nil, 0, nil
}

func quote(code string, price string, lead int, quality, performance float64, compliance domain.ComplianceStatus) domain.Quotation {
	return domain.Quotation{
		VendorCode:       code,
		UnitPrice:        decimal.RequireFromString(price),
		LeadTimeDays:     lead,
		QualityScore:     quality,
		PerformanceScore: performance,
		Compliance:       compliance,
	}
}

func TestCompareRanksQuotes(t *testing.T) {
	repo := &fakeQuotationRepo{
		rfqs: map[int64]*domain.RFQ{14: {ID: 14, Number: "RFQ-14"}},
		quotes: map[int64][]domain.Quotation{
			14: {
				quote("V-BHAR", "79.50", 12, 68, 64, domain.CompliantFull),
				quote("V-ACME", "84.00", 7, 89, 86, domain.CompliantFull),
				quote("V-CRYO", "76.00", 9, 45, 42, domain.NonCompliant),
			},
		},
	}
	svc := NewQuotationService(repo)

	comparison, err := svc.Compare(context.Background(), 14, metrics.DefaultWeights)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}

	if len(comparison.Quotes) != 3 {
		t.Fatalf("expected 3 scored quotes, got %d", len(comparison.Quotes))
	}
	if comparison.Quotes[0].Rank != "L1" {
		t.Errorf("first quote rank = %s, want L1", comparison.Quotes[0].Rank)
	}
	if comparison.Quotes[0].Quotation.VendorCode != "V-ACME" {
		t.Errorf("L1 vendor = %s, want V-ACME", comparison.Quotes[0].Quotation.VendorCode)
	}

	for _, q := range comparison.Quotes {
		if q.Quotation.VendorCode == "V-CRYO" {
			if q.AwardEligible {
				t.Error("non-compliant quote must not be award eligible")
			}
			if !q.LowestPrice {
				t.Error("cheapest quote should carry the lowest price highlight")
			}
		}
	}
}

func TestCompareUnknownRFQ(t *testing.T) {
	svc := NewQuotationService(&fakeQuotationRepo{rfqs: map[int64]*domain.RFQ{}})

	_, err := svc.Compare(context.Background(), 99, metrics.DefaultWeights)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompareNoQuotes(t *testing.T) {
	repo := &fakeQuotationRepo{
		rfqs: map[int64]*domain.RFQ{7: {ID: 7}},
	}
	svc := NewQuotationService(repo)

	comparison, err := svc.Compare(context.Background(), 7, metrics.DefaultWeights)
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if len(comparison.Quotes) != 0 {
		t.Errorf("expected empty comparison, got %d quotes", len(comparison.Quotes))
	}
}

func TestCompareRejectsBadWeights(t *testing.T) {
	repo := &fakeQuotationRepo{
		rfqs: map[int64]*domain.RFQ{7: {ID: 7}},
		quotes: map[int64][]domain.Quotation{
			7: {quote("V-ACME", "10.00", 5, 80, 80, domain.CompliantFull)},
		},
	}
	svc := NewQuotationService(repo)

	_, err := svc.Compare(context.Background(), 7, metrics.Weights{Price: 90, LeadTime: 20, Quality: 25, Performance: 15})
	if err == nil {
		t.Fatal("expected error for weights not summing to 100")
	}
}
