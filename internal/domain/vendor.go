package domain

import "time"

// VendorStatus is the position of a vendor in the onboarding/approval workflow.
type VendorStatus string

const (
	VendorPending           VendorStatus = "pending"
	VendorDocumentsPending  VendorStatus = "documents_pending"
	VendorDocumentsApproved VendorStatus = "documents_approved"
	VendorPendingApproval   VendorStatus = "pending_approval"
	VendorApproved          VendorStatus = "approved"
	VendorActive            VendorStatus = "active"
	VendorRejected          VendorStatus = "rejected"
	VendorInactive          VendorStatus = "inactive"
	VendorBlocked           VendorStatus = "blocked"
)

// RiskTier is a qualitative vendor risk classification.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Vendor represents a supplier record with compliance info and scorecard fields.
// Sub-scores are on a 0-10 scale.
type Vendor struct {
	ID               int64        `json:"id" db:"id"`
	Code             string       `json:"code" db:"code"`
	Name             string       `json:"name" db:"name"`
	ContactPerson    string       `json:"contact_person" db:"contact_person"`
	Email            string       `json:"email" db:"email"`
	Phone            string       `json:"phone" db:"phone"`
	Address          string       `json:"address" db:"address"`
	GSTNumber        string       `json:"gst_number" db:"gst_number"`
	PANNumber        string       `json:"pan_number" db:"pan_number"`
	Category         string       `json:"category" db:"category"`
	Status           VendorStatus `json:"status" db:"status"`
	RiskOverride     *RiskTier    `json:"risk_override,omitempty" db:"risk_override"`
	PerformanceScore float64      `json:"performance_score" db:"performance_score"`
	QualityScore     float64      `json:"quality_score" db:"quality_score"`
	DeliveryScore    float64      `json:"delivery_score" db:"delivery_score"`
	SLAScore         float64      `json:"sla_score" db:"sla_score"`
	CreatedAt        time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" db:"updated_at"`
}

// DocumentStatus is the review state of a single vendor document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
	DocumentExpired  DocumentStatus = "expired"
)

// DocumentType enumerates the fixed vendor document categories.
type DocumentType string

const (
	DocGSTCertificate   DocumentType = "gst_certificate"
	DocPANCard          DocumentType = "pan_card"
	DocBankDetails      DocumentType = "bank_details"
	DocISOCertificate   DocumentType = "iso_certificate"
	DocFinancialReport  DocumentType = "financial_report"
	DocComplianceLetter DocumentType = "compliance_letter"
)

// VendorDocument represents an uploaded compliance document under review.
type VendorDocument struct {
	ID              int64          `json:"id" db:"id"`
	VendorID        int64          `json:"vendor_id" db:"vendor_id"`
	Type            DocumentType   `json:"type" db:"doc_type"`
	FileName        string         `json:"file_name" db:"file_name"`
	StorageKey      string         `json:"storage_key" db:"storage_key"`
	Status          DocumentStatus `json:"status" db:"status"`
	RejectionReason *string        `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ReviewedBy      *string        `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty" db:"reviewed_at"`
	UploadedAt      time.Time      `json:"uploaded_at" db:"uploaded_at"`
}

// DocumentSummary is the per-vendor document approval tally used to gate
// workflow actions.
type DocumentSummary struct {
	Total    int `json:"total" db:"total"`
	Approved int `json:"approved" db:"approved"`
	Rejected int `json:"rejected" db:"rejected"`
	Pending  int `json:"pending" db:"pending"`
}

// StatusTransition is one entry in the append-only vendor workflow history.
type StatusTransition struct {
	ID         int64        `json:"id" db:"id"`
	VendorID   int64        `json:"vendor_id" db:"vendor_id"`
	FromStatus VendorStatus `json:"from_status" db:"from_status"`
	ToStatus   VendorStatus `json:"to_status" db:"to_status"`
	Action     string       `json:"action" db:"action"`
	Reason     string       `json:"reason" db:"reason"`
	Actor      string       `json:"actor" db:"actor"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
}
