package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/storage"
	"github.com/procuredash/backend-go/internal/workflow"
)

type fakeVendorRepo struct {
	vendors   map[int64]*domain.Vendor
	documents map[int64]*domain.VendorDocument
	history   []domain.StatusTransition
	nextDocID int64
}

func newFakeVendorRepo(vendors ...*domain.Vendor) *fakeVendorRepo {
	repo := &fakeVendorRepo{
		vendors:   make(map[int64]*domain.Vendor),
		documents: make(map[int64]*domain.VendorDocument),
		nextDocID: 1,
	}
	for _, v := range vendors {
		repo.vendors[v.ID] = v
	}
	return repo
}

func (f *fakeVendorRepo) List(ctx context.Context, search string, status domain.VendorStatus, page, pageSize int, sortField, sortDirection string) (*domain.VendorListResponse, error) {
	return &domain.VendorListResponse{}, nil
}

func (f *fakeVendorRepo) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	vendor, ok := f.vendors[id]
	if !ok {
		return nil, fmt.Errorf("vendor %d: %w", id, domain.ErrNotFound)
	}
	copied := *vendor
	return &copied, nil
}

func (f *fakeVendorRepo) Create(ctx context.Context, vendor *domain.Vendor) error {
	vendor.ID = int64(len(f.vendors) + 1)
	f.vendors[vendor.ID] = vendor
	return nil
}

func (f *fakeVendorRepo) SetRiskOverride(ctx context.Context, id int64, tier *domain.RiskTier) error {
	vendor, ok := f.vendors[id]
	if !ok {
		return fmt.Errorf("vendor %d: %w", id, domain.ErrNotFound)
	}
	vendor.RiskOverride = tier
	return nil
}

func (f *fakeVendorRepo) UpdateStatus(ctx context.Context, id int64, expectedFrom domain.VendorStatus, transition domain.StatusTransition) error {
	vendor, ok := f.vendors[id]
	if !ok {
		return fmt.Errorf("vendor %d: %w", id, domain.ErrNotFound)
	}
	if vendor.Status != expectedFrom {
		return fmt.Errorf("vendor %d is no longer in status %q: %w", id, expectedFrom, domain.ErrConflict)
	}
	vendor.Status = transition.ToStatus
	f.history = append(f.history, transition)
	return nil
}

func (f *fakeVendorRepo) History(ctx context.Context, vendorID int64) ([]domain.StatusTransition, error) {
	var out []domain.StatusTransition
	for _, t := range f.history {
		if t.VendorID == vendorID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) ListDocuments(ctx context.Context, vendorID int64) ([]domain.VendorDocument, error) {
	var out []domain.VendorDocument
	for _, doc := range f.documents {
		if doc.VendorID == vendorID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (f *fakeVendorRepo) GetDocument(ctx context.Context, id int64) (*domain.VendorDocument, error) {
	doc, ok := f.documents[id]
	if !ok {
		return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	copied := *doc
	return &copied, nil
}

func (f *fakeVendorRepo) CreateDocument(ctx context.Context, doc *domain.VendorDocument) error {
	doc.ID = f.nextDocID
	f.nextDocID++
	stored := *doc
	f.documents[doc.ID] = &stored
	return nil
}

func (f *fakeVendorRepo) UpdateDocumentStatus(ctx context.Context, id int64, status domain.DocumentStatus, reason *string, reviewer string) error {
	doc, ok := f.documents[id]
	if !ok {
		return fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	doc.Status = status
	doc.RejectionReason = reason
	doc.ReviewedBy = &reviewer
	return nil
}

func (f *fakeVendorRepo) DocumentSummary(ctx context.Context, vendorID int64) (domain.DocumentSummary, error) {
	var summary domain.DocumentSummary
	for _, doc := range f.documents {
		if doc.VendorID != vendorID {
			continue
		}
		summary.Total++
		switch doc.Status {
		case domain.DocumentApproved:
			summary.Approved++
		case domain.DocumentRejected:
			summary.Rejected++
		case domain.DocumentPending:
			summary.Pending++
		}
	}
	return summary, nil
}

type fakeDocumentStorage struct {
	objects map[string][]byte
}

func newFakeDocumentStorage() *fakeDocumentStorage {
	return &fakeDocumentStorage{objects: make(map[string][]byte)}
}

func (f *fakeDocumentStorage) Upload(ctx context.Context, key string, contentType string, size int64, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeDocumentStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not stored", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeDocumentStorage) List(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (f *fakeDocumentStorage) Remove(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

func TestApplyActionGuardBlocksApproval(t *testing.T) {
	repo := newFakeVendorRepo(&domain.Vendor{ID: 1, Status: domain.VendorPendingApproval})
	repo.documents[1] = &domain.VendorDocument{ID: 1, VendorID: 1, Status: domain.DocumentPending}
	svc := NewVendorService(repo, newFakeDocumentStorage())

	_, err := svc.ApplyAction(context.Background(), 1, workflow.ActionApprove, "", "reviewer")
	if err == nil {
		t.Fatal("expected approval to fail with a pending document")
	}
	if err.Error() != workflow.ReasonDocumentsNotApproved {
		t.Errorf("error = %q, want %q", err.Error(), workflow.ReasonDocumentsNotApproved)
	}
}

func TestApplyActionRecordsHistory(t *testing.T) {
	repo := newFakeVendorRepo(&domain.Vendor{ID: 1, Status: domain.VendorApproved})
	svc := NewVendorService(repo, newFakeDocumentStorage())

	vendor, err := svc.ApplyAction(context.Background(), 1, workflow.ActionActivate, "", "admin")
	if err != nil {
		t.Fatalf("ApplyAction returned error: %v", err)
	}
	if vendor.Status != domain.VendorActive {
		t.Errorf("status = %s, want active", vendor.Status)
	}

	history, err := svc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history))
	}
	entry := history[0]
	if entry.FromStatus != domain.VendorApproved || entry.ToStatus != domain.VendorActive {
		t.Errorf("history records %s -> %s, want approved -> active", entry.FromStatus, entry.ToStatus)
	}
	if entry.Actor != "admin" {
		t.Errorf("actor = %s, want admin", entry.Actor)
	}
}

func TestUploadAndReviewDocument(t *testing.T) {
	repo := newFakeVendorRepo(&domain.Vendor{ID: 3, Status: domain.VendorDocumentsPending})
	files := newFakeDocumentStorage()
	svc := NewVendorService(repo, files)

	doc, err := svc.UploadDocument(context.Background(), 3, domain.DocGSTCertificate,
		"gst.pdf", "application/pdf", 4, strings.NewReader("%PDF"))
	if err != nil {
		t.Fatalf("UploadDocument returned error: %v", err)
	}
	if doc.Status != domain.DocumentPending {
		t.Errorf("uploaded document status = %s, want pending", doc.Status)
	}
	if _, ok := files.objects[doc.StorageKey]; !ok {
		t.Errorf("file not stored under key %s", doc.StorageKey)
	}

	reviewed, err := svc.ReviewDocument(context.Background(), doc.ID, workflow.DecisionReject, "scan unreadable", "auditor")
	if err != nil {
		t.Fatalf("ReviewDocument returned error: %v", err)
	}
	if reviewed.Status != domain.DocumentRejected {
		t.Errorf("reviewed status = %s, want rejected", reviewed.Status)
	}
	if reviewed.RejectionReason == nil || *reviewed.RejectionReason != "scan unreadable" {
		t.Error("rejection reason not recorded")
	}

	// A second review must fail, rejection is terminal.
	if _, err := svc.ReviewDocument(context.Background(), doc.ID, workflow.DecisionApprove, "", "auditor"); err == nil {
		t.Error("expected re-review of a rejected document to fail")
	}
}

func TestUploadDocumentRejectsUnknownType(t *testing.T) {
	repo := newFakeVendorRepo(&domain.Vendor{ID: 3, Status: domain.VendorDocumentsPending})
	svc := NewVendorService(repo, newFakeDocumentStorage())

	_, err := svc.UploadDocument(context.Background(), 3, "selfie",
		"me.png", "image/png", 1, strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected unknown document type to be rejected")
	}
}

func TestScorecardUsesOverride(t *testing.T) {
	high := domain.RiskHigh
	repo := newFakeVendorRepo(&domain.Vendor{
		ID: 5, Status: domain.VendorActive,
		PerformanceScore: 8.6, QualityScore: 8.9, DeliveryScore: 8.2, SLAScore: 8.4,
		RiskOverride: &high,
	})
	svc := NewVendorService(repo, newFakeDocumentStorage())

	card, err := svc.Scorecard(context.Background(), 5)
	if err != nil {
		t.Fatalf("Scorecard returned error: %v", err)
	}
	if card.OverallPct != 86 {
		t.Errorf("OverallPct = %v, want 86", card.OverallPct)
	}
	if card.RiskTier != domain.RiskHigh || !card.RiskOverridden {
		t.Errorf("risk = %s (overridden=%v), want high override", card.RiskTier, card.RiskOverridden)
	}
}
