package service

import (
	"context"
	"fmt"

	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/metrics"
	"github.com/procuredash/backend-go/internal/repository"
)

// QuotationService scores competing RFQ quotations and serves purchase order
// and shipment listings.
type QuotationService struct {
	repo repository.QuotationRepository
}

func NewQuotationService(repo repository.QuotationRepository) *QuotationService {
	return &QuotationService{repo: repo}
}

func (s *QuotationService) ListRFQs(ctx context.Context, page, pageSize int) ([]domain.RFQ, int, error) {
	return s.repo.ListRFQs(ctx, page, pageSize)
}

// Compare scores every quotation submitted against an RFQ with the given
// weight vector and returns them ranked L1, L2, ...
func (s *QuotationService) Compare(ctx context.Context, rfqID int64, weights metrics.Weights) (*domain.QuoteComparison, error) {
	if _, err := s.repo.GetRFQ(ctx, rfqID); err != nil {
		return nil, err
	}

	quotes, err := s.repo.QuotationsByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return &domain.QuoteComparison{RFQID: rfqID, Quotes: []domain.QuoteScore{}}, nil
	}

	byCode := make(map[string]domain.Quotation, len(quotes))
	inputs := make([]metrics.QuoteInput, 0, len(quotes))
	for _, q := range quotes {
		byCode[q.VendorCode] = q
		inputs = append(inputs, metrics.QuoteInput{
			VendorCode:       q.VendorCode,
			UnitPrice:        q.UnitPrice.InexactFloat64(),
			LeadTimeDays:     q.LeadTimeDays,
			QualityScore:     q.QualityScore,
			PerformanceScore: q.PerformanceScore,
			NonCompliant:     q.Compliance == domain.NonCompliant,
		})
	}

	scored, err := metrics.ScoreQuotes(inputs, weights)
	if err != nil {
		return nil, fmt.Errorf("score quotes for rfq %d: %w", rfqID, err)
	}

	comparison := &domain.QuoteComparison{
		RFQID:  rfqID,
		Quotes: make([]domain.QuoteScore, 0, len(scored)),
	}
	for _, sq := range scored {
		comparison.Quotes = append(comparison.Quotes, domain.QuoteScore{
			Quotation:      byCode[sq.VendorCode],
			WeightedScore:  sq.WeightedScore,
			Rank:           sq.Rank,
			AwardEligible:  sq.AwardEligible,
			LowestPrice:    sq.LowestPrice,
			ShortestLead:   sq.ShortestLead,
			HighestQuality: sq.HighestQuality,
		})
	}

	return comparison, nil
}

func (s *QuotationService) ListPurchaseOrders(ctx context.Context, status domain.POStatus, page, pageSize int) ([]domain.PurchaseOrder, int, error) {
	return s.repo.ListPurchaseOrders(ctx, status, page, pageSize)
}

func (s *QuotationService) ListShipments(ctx context.Context, page, pageSize int) ([]domain.Shipment, int, error) {
	return s.repo.ListShipments(ctx, page, pageSize)
}
