package repository

import (
	"context"

	"github.com/procuredash/backend-go/internal/domain"
)

// FinanceRepository reads vendor invoices for the aging report.
type FinanceRepository interface {
	// ListInvoices returns a page of invoices, optionally filtered by status.
	ListInvoices(ctx context.Context, status domain.InvoiceStatus, page, pageSize int, sortField, sortDirection string) ([]domain.Invoice, int, error)

	// OpenInvoices returns every invoice that is not fully paid, for the
	// aging aggregation.
	OpenInvoices(ctx context.Context) ([]domain.Invoice, error)
}
