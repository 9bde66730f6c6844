package postgres

import (
	"context"
	"fmt"

	"github.com/procuredash/backend-go/internal/domain"
)

type financeRepository struct {
	db *DB
}

func NewFinanceRepository(db *DB) *financeRepository {
	return &financeRepository{db: db}
}

const invoiceColumns = `
    i.id, i.number, i.vendor_id, COALESCE(v.name, '') AS vendor_name, i.po_number,
    i.invoice_date, i.due_date, i.amount, i.paid_amount, i.status,
    i.payment_terms, i.monthly_interest_pct, i.description, i.created_at, i.updated_at
`

func (r *financeRepository) ListInvoices(ctx context.Context, status domain.InvoiceStatus, page, pageSize int, sortField, sortDirection string) ([]domain.Invoice, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	validSortFields := map[string]string{
		"number":   "i.number",
		"due_date": "i.due_date",
		"amount":   "i.amount",
		"status":   "i.status",
	}
	sortCol, ok := validSortFields[sortField]
	if !ok {
		sortCol = "i.due_date"
	}
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "asc"
	}

	where := ""
	args := []interface{}{}
	if status != "" {
		args = append(args, status)
		where = "WHERE i.status = $1"
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM invoices i %s`, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT %s
        FROM invoices i
        LEFT JOIN vendors v ON v.id = i.vendor_id
        %s
        ORDER BY %s %s, i.number ASC
        LIMIT $%d OFFSET $%d
    `, invoiceColumns, where, sortCol, sortDirection, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	invoices := []domain.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, total, nil
}

func (r *financeRepository) OpenInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM invoices i
        LEFT JOIN vendors v ON v.id = i.vendor_id
        WHERE i.status <> 'paid'
        ORDER BY i.due_date ASC, i.number ASC
    `, invoiceColumns)

	invoices := []domain.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query); err != nil {
		return nil, fmt.Errorf("failed to fetch open invoices: %w", err)
	}
	return invoices, nil
}
