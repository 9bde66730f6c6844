package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/procuredash/backend-go/internal/domain"
)

type vendorRepository struct {
	db *DB
}

func NewVendorRepository(db *DB) *vendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) List(ctx context.Context, search string, status domain.VendorStatus, page, pageSize int, sortField, sortDirection string) (*domain.VendorListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	validSortFields := map[string]string{
		"code":              "code",
		"name":              "name",
		"status":            "status",
		"performance_score": "performance_score",
		"created_at":        "created_at",
	}
	sortCol, ok := validSortFields[sortField]
	if !ok {
		sortCol = "name"
	}
	if sortDirection != "asc" && sortDirection != "desc" {
		sortDirection = "asc"
	}

	var (
		clauses []string
		args    []interface{}
	)
	if search != "" {
		args = append(args, "%"+strings.TrimSpace(search)+"%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR code ILIKE $%d)", len(args), len(args)))
	}
	if status != "" {
		args = append(args, status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}
	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM vendors %s`, where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count vendors: %w", err)
	}

	query := fmt.Sprintf(`
        SELECT id, code, name, contact_person, email, phone, address,
               gst_number, pan_number, category, status, risk_override,
               performance_score, quality_score, delivery_score, sla_score,
               created_at, updated_at
        FROM vendors
        %s
        ORDER BY %s %s, code ASC
        LIMIT $%d OFFSET $%d
    `, where, sortCol, sortDirection, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	vendors := []domain.Vendor{}
	if err := r.db.SelectContext(ctx, &vendors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return &domain.VendorListResponse{
		Items:      vendors,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	query := `
        SELECT id, code, name, contact_person, email, phone, address,
               gst_number, pan_number, category, status, risk_override,
               performance_score, quality_score, delivery_score, sla_score,
               created_at, updated_at
        FROM vendors
        WHERE id = $1
    `
	var vendor domain.Vendor
	if err := r.db.GetContext(ctx, &vendor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vendor %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch vendor %d: %w", id, err)
	}
	return &vendor, nil
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	query := `
        INSERT INTO vendors (
            code, name, contact_person, email, phone, address,
            gst_number, pan_number, category, status,
            performance_score, quality_score, delivery_score, sla_score,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
        RETURNING id, created_at, updated_at
    `
	err := r.db.QueryRowxContext(ctx, query,
		vendor.Code, vendor.Name, vendor.ContactPerson, vendor.Email, vendor.Phone,
		vendor.Address, vendor.GSTNumber, vendor.PANNumber, vendor.Category, vendor.Status,
		vendor.PerformanceScore, vendor.QualityScore, vendor.DeliveryScore, vendor.SLAScore,
	).Scan(&vendor.ID, &vendor.CreatedAt, &vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor: %w", err)
	}
	return nil
}

func (r *vendorRepository) SetRiskOverride(ctx context.Context, id int64, tier *domain.RiskTier) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vendors SET risk_override = $1, updated_at = NOW() WHERE id = $2`, tier, id)
	if err != nil {
		return fmt.Errorf("failed to set risk override: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set risk override: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("vendor %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateStatus writes the new status and the history record atomically.
// The status write is guarded by the expected source status, so a stale
// concurrent transition fails instead of silently winning.
func (r *vendorRepository) UpdateStatus(ctx context.Context, id int64, expectedFrom domain.VendorStatus, transition domain.StatusTransition) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE vendors SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
			transition.ToStatus, id, expectedFrom)
		if err != nil {
			return fmt.Errorf("failed to update vendor status: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to update vendor status: %w", err)
		}
		if rows == 0 {
			return fmt.Errorf("vendor %d is no longer in status %q: %w", id, expectedFrom, domain.ErrConflict)
		}

		_, err = tx.ExecContext(ctx, `
            INSERT INTO vendor_status_history (vendor_id, from_status, to_status, action, reason, actor, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, NOW())
        `, id, transition.FromStatus, transition.ToStatus, transition.Action, transition.Reason, transition.Actor)
		if err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}
		return nil
	})
}

func (r *vendorRepository) History(ctx context.Context, vendorID int64) ([]domain.StatusTransition, error) {
	query := `
        SELECT id, vendor_id, from_status, to_status, action, reason, actor, created_at
        FROM vendor_status_history
        WHERE vendor_id = $1
        ORDER BY created_at DESC, id DESC
    `
	history := []domain.StatusTransition{}
	if err := r.db.SelectContext(ctx, &history, query, vendorID); err != nil {
		return nil, fmt.Errorf("failed to fetch status history: %w", err)
	}
	return history, nil
}

func (r *vendorRepository) ListDocuments(ctx context.Context, vendorID int64) ([]domain.VendorDocument, error) {
	query := `
        SELECT id, vendor_id, doc_type, file_name, storage_key, status,
               rejection_reason, reviewed_by, reviewed_at, uploaded_at
        FROM vendor_documents
        WHERE vendor_id = $1
        ORDER BY uploaded_at DESC, id DESC
    `
	docs := []domain.VendorDocument{}
	if err := r.db.SelectContext(ctx, &docs, query, vendorID); err != nil {
		return nil, fmt.Errorf("failed to list vendor documents: %w", err)
	}
	return docs, nil
}

func (r *vendorRepository) GetDocument(ctx context.Context, id int64) (*domain.VendorDocument, error) {
	query := `
        SELECT id, vendor_id, doc_type, file_name, storage_key, status,
               rejection_reason, reviewed_by, reviewed_at, uploaded_at
        FROM vendor_documents
        WHERE id = $1
    `
	var doc domain.VendorDocument
	if err := r.db.GetContext(ctx, &doc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch document %d: %w", id, err)
	}
	return &doc, nil
}

func (r *vendorRepository) CreateDocument(ctx context.Context, doc *domain.VendorDocument) error {
	query := `
        INSERT INTO vendor_documents (vendor_id, doc_type, file_name, storage_key, status, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, NOW())
        RETURNING id, uploaded_at
    `
	err := r.db.QueryRowxContext(ctx, query,
		doc.VendorID, doc.Type, doc.FileName, doc.StorageKey, doc.Status,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor document: %w", err)
	}
	return nil
}

func (r *vendorRepository) UpdateDocumentStatus(ctx context.Context, id int64, status domain.DocumentStatus, reason *string, reviewer string) error {
	result, err := r.db.ExecContext(ctx, `
        UPDATE vendor_documents
        SET status = $1, rejection_reason = $2, reviewed_by = $3, reviewed_at = NOW()
        WHERE id = $4
    `, status, reason, reviewer, id)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *vendorRepository) DocumentSummary(ctx context.Context, vendorID int64) (domain.DocumentSummary, error) {
	query := `
        SELECT
            COUNT(*) AS total,
            COUNT(*) FILTER (WHERE status = 'approved') AS approved,
            COUNT(*) FILTER (WHERE status = 'rejected') AS rejected,
            COUNT(*) FILTER (WHERE status = 'pending') AS pending
        FROM vendor_documents
        WHERE vendor_id = $1
    `
	var summary domain.DocumentSummary
	if err := r.db.GetContext(ctx, &summary, query, vendorID); err != nil {
		return domain.DocumentSummary{}, fmt.Errorf("failed to summarize documents: %w", err)
	}
	return summary, nil
}
