package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/metrics"
	"github.com/procuredash/backend-go/internal/repository"
	"github.com/procuredash/backend-go/internal/storage"
	"github.com/procuredash/backend-go/internal/workflow"
)

var validDocumentTypes = map[domain.DocumentType]bool{
	domain.DocGSTCertificate:   true,
	domain.DocPANCard:          true,
	domain.DocBankDetails:      true,
	domain.DocISOCertificate:   true,
	domain.DocFinancialReport:  true,
	domain.DocComplianceLetter: true,
}

// VendorService drives the vendor approval workflow, document review and
// the derived scorecard.
type VendorService struct {
	repo  repository.VendorRepository
	files storage.DocumentStorage
}

func NewVendorService(repo repository.VendorRepository, files storage.DocumentStorage) *VendorService {
	return &VendorService{repo: repo, files: files}
}

func (s *VendorService) List(ctx context.Context, search string, status domain.VendorStatus, page, pageSize int, sortField, sortDirection string) (*domain.VendorListResponse, error) {
	return s.repo.List(ctx, search, status, page, pageSize, sortField, sortDirection)
}

func (s *VendorService) Get(ctx context.Context, id int64) (*domain.Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

// Create registers a new vendor at the start of the approval workflow.
func (s *VendorService) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.Status = domain.VendorPending
	return s.repo.Create(ctx, vendor)
}

// Scorecard derives the display percentages and risk tier for a vendor.
func (s *VendorService) Scorecard(ctx context.Context, id int64) (*domain.VendorScorecard, error) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	override := ""
	if vendor.RiskOverride != nil {
		override = string(*vendor.RiskOverride)
	}

	card, err := metrics.ComputeScorecard(metrics.SubScores{
		Quality:     vendor.QualityScore,
		Delivery:    vendor.DeliveryScore,
		SLA:         vendor.SLAScore,
		Performance: vendor.PerformanceScore,
	}, override)
	if err != nil {
		return nil, fmt.Errorf("scorecard for vendor %d: %w", id, err)
	}

	return &domain.VendorScorecard{
		VendorID:       vendor.ID,
		OverallPct:     card.OverallPct,
		QualityPct:     card.QualityPct,
		DeliveryPct:    card.DeliveryPct,
		SLAPct:         card.SLAPct,
		RiskTier:       domain.RiskTier(card.RiskTier),
		RiskOverridden: card.RiskOverridden,
	}, nil
}

// SetRiskOverride pins a vendor's risk tier, or clears the override when tier
// is nil so the derived tier applies again.
func (s *VendorService) SetRiskOverride(ctx context.Context, id int64, tier *domain.RiskTier) error {
	if tier != nil {
		switch *tier {
		case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
		default:
			return fmt.Errorf("unknown risk tier %q", *tier)
		}
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetRiskOverride(ctx, id, tier)
}

// ApplyAction runs one workflow action against a vendor, persisting the new
// status together with its history entry.
func (s *VendorService) ApplyAction(ctx context.Context, id int64, action, reason, actor string) (*domain.Vendor, error) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.DocumentSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := workflow.Transition(vendor.Status, action, reason, docs)
	if err != nil {
		return nil, err
	}

	transition := domain.StatusTransition{
		VendorID:   id,
		FromStatus: vendor.Status,
		ToStatus:   next,
		Action:     action,
		Reason:     reason,
		Actor:      actor,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.UpdateStatus(ctx, id, vendor.Status, transition); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Actions reports the workflow actions available from the vendor's current
// status, including guarded actions that are reachable but disabled.
func (s *VendorService) Actions(ctx context.Context, id int64) ([]domain.WorkflowAction, error) {
	vendor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.DocumentSummary(ctx, id)
	if err != nil {
		return nil, err
	}

	return workflow.AllowedActions(vendor.Status, docs), nil
}

func (s *VendorService) History(ctx context.Context, vendorID int64) ([]domain.StatusTransition, error) {
	if _, err := s.repo.GetByID(ctx, vendorID); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, vendorID)
}

func (s *VendorService) ListDocuments(ctx context.Context, vendorID int64) ([]domain.VendorDocument, error) {
	if _, err := s.repo.GetByID(ctx, vendorID); err != nil {
		return nil, err
	}
	return s.repo.ListDocuments(ctx, vendorID)
}

// UploadDocument stores the file and records a pending document for review.
func (s *VendorService) UploadDocument(ctx context.Context, vendorID int64, docType domain.DocumentType, fileName, contentType string, size int64, body io.Reader) (*domain.VendorDocument, error) {
	if !validDocumentTypes[docType] {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	if _, err := s.repo.GetByID(ctx, vendorID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("vendors/%d/%s/%s", vendorID, docType, fileName)
	if err := s.files.Upload(ctx, key, contentType, size, body); err != nil {
		return nil, err
	}

	doc := &domain.VendorDocument{
		VendorID:   vendorID,
		Type:       docType,
		FileName:   fileName,
		StorageKey: key,
		Status:     domain.DocumentPending,
		UploadedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReviewDocument applies a reviewer decision to a pending document.
func (s *VendorService) ReviewDocument(ctx context.Context, docID int64, decision, reason, reviewer string) (*domain.VendorDocument, error) {
	doc, err := s.repo.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}

	next, err := workflow.ReviewDocument(doc.Status, decision, reason)
	if err != nil {
		return nil, err
	}

	var rejection *string
	if next == domain.DocumentRejected {
		rejection = &reason
	}
	if err := s.repo.UpdateDocumentStatus(ctx, docID, next, rejection, reviewer); err != nil {
		return nil, err
	}

	return s.repo.GetDocument(ctx, docID)
}

// DownloadDocument opens the stored file for a document. The caller closes
// the reader.
func (s *VendorService) DownloadDocument(ctx context.Context, docID int64) (*domain.VendorDocument, io.ReadCloser, error) {
	doc, err := s.repo.GetDocument(ctx, docID)
	if err != nil {
		return nil, nil, err
	}

	body, err := s.files.Download(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return doc, body, nil
}
