package repository

import (
	"context"

	"github.com/procuredash/backend-go/internal/domain"
)

// VendorRepository persists vendor records, their compliance documents and
// the append-only workflow history.
type VendorRepository interface {
	List(ctx context.Context, search string, status domain.VendorStatus, page, pageSize int, sortField, sortDirection string) (*domain.VendorListResponse, error)
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	Create(ctx context.Context, vendor *domain.Vendor) error
	SetRiskOverride(ctx context.Context, id int64, tier *domain.RiskTier) error

	// UpdateStatus writes the new status and appends the transition record in
	// one transaction. It fails when the stored status no longer matches
	// expectedFrom.
	UpdateStatus(ctx context.Context, id int64, expectedFrom domain.VendorStatus, transition domain.StatusTransition) error
	History(ctx context.Context, vendorID int64) ([]domain.StatusTransition, error)

	ListDocuments(ctx context.Context, vendorID int64) ([]domain.VendorDocument, error)
	GetDocument(ctx context.Context, id int64) (*domain.VendorDocument, error)
	CreateDocument(ctx context.Context, doc *domain.VendorDocument) error
	UpdateDocumentStatus(ctx context.Context, id int64, status domain.DocumentStatus, reason *string, reviewer string) error
	DocumentSummary(ctx context.Context, vendorID int64) (domain.DocumentSummary, error)
}
