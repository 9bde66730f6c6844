package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/service"
	"github.com/rs/zerolog/log"
)

type FinanceHandler struct {
	financeService *service.FinanceService
}

func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

var validInvoiceStatuses = map[domain.InvoiceStatus]bool{
	domain.InvoicePending:  true,
	domain.InvoicePartial:  true,
	domain.InvoicePaid:     true,
	domain.InvoiceOverdue:  true,
	domain.InvoiceDisputed: true,
}

// GetAgingTable returns a page of invoices classified into aging buckets.
func (h *FinanceHandler) GetAgingTable(c *gin.Context) {
	page, pageSize := parsePagination(c)
	sortField := c.DefaultQuery("sort_by", "due_date")
	sortDirection := c.DefaultQuery("sort_dir", "asc")

	var status domain.InvoiceStatus
	if raw := c.Query("status"); raw != "" {
		status = domain.InvoiceStatus(raw)
		if !validInvoiceStatuses[status] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown invoice status"})
			return
		}
	}

	response, err := h.financeService.AgingTable(c.Request.Context(), status, page, pageSize, sortField, sortDirection)
	if err != nil {
		log.Error().Err(err).Msg("failed to build aging table")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch invoice aging"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAgingReport returns the aggregated bucket totals for all open invoices.
func (h *FinanceHandler) GetAgingReport(c *gin.Context) {
	report, err := h.financeService.AgingReport(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to build aging report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch aging report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
