package service

import (
	"context"
	"time"

	"github.com/procuredash/backend-go/internal/cache"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/metrics"
	"github.com/procuredash/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FinanceService serves the invoice aging table and the aggregated report.
type FinanceService struct {
	repo  repository.FinanceRepository
	cache cache.AgingReportCache
}

func NewFinanceService(repo repository.FinanceRepository, cacheImpl cache.AgingReportCache) *FinanceService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopAgingReportCache()
	}
	return &FinanceService{repo: repo, cache: cacheImpl}
}

func agingInputFor(inv domain.Invoice, today time.Time) metrics.AgingInput {
	return metrics.AgingInput{
		DueDate:        inv.DueDate,
		Today:          today,
		Amount:         inv.Amount,
		PaidAmount:     inv.PaidAmount,
		Paid:           inv.Status == domain.InvoicePaid,
		MonthlyRatePct: inv.MonthlyInterestPct,
	}
}

// AgingTable classifies a page of invoices into aging buckets with accrued
// interest.
func (s *FinanceService) AgingTable(ctx context.Context, status domain.InvoiceStatus, page, pageSize int, sortField, sortDirection string) (*domain.InvoiceAgingResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	invoices, total, err := s.repo.ListInvoices(ctx, status, page, pageSize, sortField, sortDirection)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	items := make([]domain.InvoiceAgingItem, 0, len(invoices))
	for _, inv := range invoices {
		result, err := metrics.ClassifyInvoice(agingInputFor(inv, today))
		if err != nil {
			return nil, err
		}
		items = append(items, domain.InvoiceAgingItem{
			Invoice:     inv,
			Bucket:      result.Bucket,
			OverdueDays: result.OverdueDays,
			Outstanding: result.Outstanding,
			Interest:    result.Interest,
		})
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &domain.InvoiceAgingResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// AgingReport aggregates every open invoice into bucket totals. The bucket
// outstanding amounts always sum to the total outstanding.
func (s *FinanceService) AgingReport(ctx context.Context) (*domain.AgingReport, error) {
	if report, ok, err := s.cache.Get(ctx); err == nil && ok {
		return report, nil
	} else if err != nil {
		log.Warn().Err(err).Msg("finance: cache get aging report failed")
	}

	invoices, err := s.repo.OpenInvoices(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC()
	totals := make(map[string]*domain.AgingBucketTotal, len(metrics.AgingBuckets))
	for _, bucket := range metrics.AgingBuckets {
		totals[bucket] = &domain.AgingBucketTotal{
			Bucket:      bucket,
			Outstanding: decimal.Zero,
			Interest:    decimal.Zero,
		}
	}

	report := &domain.AgingReport{
		TotalOutstanding: decimal.Zero,
		TotalInterest:    decimal.Zero,
	}
	for _, inv := range invoices {
		result, err := metrics.ClassifyInvoice(agingInputFor(inv, today))
		if err != nil {
			return nil, err
		}
		bucket, ok := totals[result.Bucket]
		if !ok {
			continue
		}
		bucket.Count++
		bucket.Outstanding = bucket.Outstanding.Add(result.Outstanding)
		bucket.Interest = bucket.Interest.Add(result.Interest)
		report.TotalOutstanding = report.TotalOutstanding.Add(result.Outstanding)
		report.TotalInterest = report.TotalInterest.Add(result.Interest)
	}

	report.Buckets = make([]domain.AgingBucketTotal, 0, len(metrics.AgingBuckets))
	for _, bucket := range metrics.AgingBuckets {
		report.Buckets = append(report.Buckets, *totals[bucket])
	}

	if err := s.cache.Set(ctx, report); err != nil {
		log.Warn().Err(err).Msg("finance: cache set aging report failed")
	}

	return report, nil
}

// ListInvoices returns raw invoices without aging classification.
func (s *FinanceService) ListInvoices(ctx context.Context, status domain.InvoiceStatus, page, pageSize int, sortField, sortDirection string) ([]domain.Invoice, int, error) {
	return s.repo.ListInvoices(ctx, status, page, pageSize, sortField, sortDirection)
}
