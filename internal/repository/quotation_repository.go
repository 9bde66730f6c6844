package repository

import (
	"context"

	"github.com/procuredash/backend-go/internal/domain"
)

// QuotationRepository reads RFQs, competing quotations, purchase orders and
// shipments.
type QuotationRepository interface {
	GetRFQ(ctx context.Context, id int64) (*domain.RFQ, error)
	ListRFQs(ctx context.Context, page, pageSize int) ([]domain.RFQ, int, error)
	QuotationsByRFQ(ctx context.Context, rfqID int64) ([]domain.Quotation, error)

	ListPurchaseOrders(ctx context.Context, status domain.POStatus, page, pageSize int) ([]domain.PurchaseOrder, int, error)
	ListShipments(ctx context.Context, page, pageSize int) ([]domain.Shipment, int, error)
}
