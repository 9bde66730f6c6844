package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/service"
	"github.com/rs/zerolog/log"
)

type VendorHandler struct {
	vendorService *service.VendorService
}

func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// ListVendors returns a paginated vendor list with optional search and
// status filters.
func (h *VendorHandler) ListVendors(c *gin.Context) {
	page, pageSize := parsePagination(c)
	search := strings.TrimSpace(c.Query("search"))
	sortField := c.DefaultQuery("sort_by", "name")
	sortDirection := c.DefaultQuery("sort_dir", "asc")

	var status domain.VendorStatus
	if raw := c.Query("status"); raw != "" {
		parsed, ok := domain.ParseVendorStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vendor status"})
			return
		}
		status = parsed
	}

	response, err := h.vendorService.List(c.Request.Context(), search, status, page, pageSize, sortField, sortDirection)
	if err != nil {
		log.Error().Err(err).Msg("failed to list vendors")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vendors"})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to fetch vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var vendor domain.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor payload"})
		return
	}
	if strings.TrimSpace(vendor.Code) == "" || strings.TrimSpace(vendor.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor code and name are required"})
		return
	}

	if err := h.vendorService.Create(c.Request.Context(), &vendor); err != nil {
		log.Error().Err(err).Msg("failed to create vendor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) GetScorecard(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	card, err := h.vendorService.Scorecard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to compute scorecard")
		return
	}

	c.JSON(http.StatusOK, card)
}

type riskOverrideRequest struct {
	RiskTier *domain.RiskTier `json:"risk_tier"`
}

// SetRiskOverride pins or clears the reviewer risk override. A null tier
// clears the override so the derived tier applies again.
func (h *VendorHandler) SetRiskOverride(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req riskOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk override payload"})
		return
	}

	if err := h.vendorService.SetRiskOverride(c.Request.Context(), id, req.RiskTier); err != nil {
		respondError(c, err, http.StatusBadRequest, "")
		return
	}

	card, err := h.vendorService.Scorecard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to compute scorecard")
		return
	}
	c.JSON(http.StatusOK, card)
}

type workflowActionRequest struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
	Actor  string `json:"actor"`
}

// ApplyAction runs a workflow action. Guard failures come back as 400 with
// the guard reason in the error body.
func (h *VendorHandler) ApplyAction(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req workflowActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action payload"})
		return
	}

	vendor, err := h.vendorService.ApplyAction(c.Request.Context(), id, req.Action, req.Reason, req.Actor)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "")
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// GetActions reports every workflow action reachable from the vendor's
// current status, including disabled ones with their reason.
func (h *VendorHandler) GetActions(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	actions, err := h.vendorService.Actions(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to fetch actions")
		return
	}
	if actions == nil {
		actions = []domain.WorkflowAction{}
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

func (h *VendorHandler) GetHistory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	history, err := h.vendorService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to fetch status history")
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

func (h *VendorHandler) ListDocuments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	docs, err := h.vendorService.ListDocuments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to fetch documents")
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// UploadDocument accepts one multipart file upload with its document type.
func (h *VendorHandler) UploadDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	docType := domain.DocumentType(strings.TrimSpace(c.PostForm("doc_type")))
	if docType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doc_type is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	doc, err := h.vendorService.UploadDocument(c.Request.Context(), id, docType, fileHeader.Filename, contentType, fileHeader.Size, file)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "")
		return
	}

	c.JSON(http.StatusCreated, doc)
}

type documentReviewRequest struct {
	Decision string `json:"decision" binding:"required"`
	Reason   string `json:"reason"`
	Reviewer string `json:"reviewer"`
}

func (h *VendorHandler) ReviewDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req documentReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review payload"})
		return
	}

	doc, err := h.vendorService.ReviewDocument(c.Request.Context(), id, req.Decision, req.Reason, req.Reviewer)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "")
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *VendorHandler) DownloadDocument(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doc, body, err := h.vendorService.DownloadDocument(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, http.StatusInternalServerError, "failed to download document")
		return
	}
	defer body.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Type", "application/octet-stream")
	if _, err := io.Copy(c.Writer, body); err != nil {
		log.Error().Err(err).Int64("document_id", doc.ID).Msg("failed to stream document")
	}
}
