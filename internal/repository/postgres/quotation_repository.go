package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/procuredash/backend-go/internal/domain"
)

type quotationRepository struct {
	db *DB
}

func NewQuotationRepository(db *DB) *quotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) GetRFQ(ctx context.Context, id int64) (*domain.RFQ, error) {
	query := `
        SELECT id, number, title, description, status, issue_date, due_date, created_at
        FROM rfqs
        WHERE id = $1
    `
	var rfq domain.RFQ
	if err := r.db.GetContext(ctx, &rfq, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("rfq %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch rfq %d: %w", id, err)
	}
	return &rfq, nil
}

func (r *quotationRepository) ListRFQs(ctx context.Context, page, pageSize int) ([]domain.RFQ, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM rfqs`); err != nil {
		return nil, 0, fmt.Errorf("failed to count rfqs: %w", err)
	}

	query := `
        SELECT id, number, title, description, status, issue_date, due_date, created_at
        FROM rfqs
        ORDER BY issue_date DESC, number ASC
        LIMIT $1 OFFSET $2
    `
	rfqs := []domain.RFQ{}
	if err := r.db.SelectContext(ctx, &rfqs, query, pageSize, (page-1)*pageSize); err != nil {
		return nil, 0, fmt.Errorf("failed to list rfqs: %w", err)
	}
	return rfqs, total, nil
}

func (r *quotationRepository) QuotationsByRFQ(ctx context.Context, rfqID int64) ([]domain.Quotation, error) {
	query := `
        SELECT q.id, q.rfq_id, q.vendor_id, v.code AS vendor_code, v.name AS vendor_name,
               q.unit_price, q.lead_time_days, q.quality_score, q.performance_score,
               q.compliance, q.valid_until, q.submitted_at
        FROM quotations q
        JOIN vendors v ON v.id = q.vendor_id
        WHERE q.rfq_id = $1
        ORDER BY v.code ASC
    `
	quotes := []domain.Quotation{}
	if err := r.db.SelectContext(ctx, &quotes, query, rfqID); err != nil {
		return nil, fmt.Errorf("failed to fetch quotations for rfq %d: %w", rfqID, err)
	}
	return quotes, nil
}

func (r *quotationRepository) ListPurchaseOrders(ctx context.Context, status domain.POStatus, page, pageSize int) ([]domain.PurchaseOrder, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	where := ""
	args := []interface{}{}
	if status != "" {
		args = append(args, status)
		where = "WHERE p.status = $1"
	}

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf(`SELECT COUNT(*) FROM purchase_orders p %s`, where), args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count purchase orders: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT p.id, p.number, p.vendor_id, COALESCE(v.name, '') AS vendor_name,
               p.status, p.order_date, p.expected_date, p.total_amount,
               p.created_at, p.updated_at
        FROM purchase_orders p
        LEFT JOIN vendors v ON v.id = p.vendor_id
        %s
        ORDER BY p.order_date DESC, p.number ASC
        LIMIT $%d OFFSET $%d
    `, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	orders := []domain.PurchaseOrder{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return orders, total, nil
}

func (r *quotationRepository) ListShipments(ctx context.Context, page, pageSize int) ([]domain.Shipment, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM shipments`); err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	query := `
        SELECT id, po_number, carrier, tracking_number, status, delayed,
               expected_at, delivered_at, created_at, updated_at
        FROM shipments
        ORDER BY expected_at DESC, po_number ASC
        LIMIT $1 OFFSET $2
    `
	shipments := []domain.Shipment{}
	if err := r.db.SelectContext(ctx, &shipments, query, pageSize, (page-1)*pageSize); err != nil {
		return nil, 0, fmt.Errorf("failed to list shipments: %w", err)
	}
	return shipments, total, nil
}
