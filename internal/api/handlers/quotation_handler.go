package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/metrics"
	"github.com/procuredash/backend-go/internal/service"
	"github.com/rs/zerolog/log"
)

type QuotationHandler struct {
	quotationService *service.QuotationService
}

func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

func (h *QuotationHandler) ListRFQs(c *gin.Context) {
	page, pageSize := parsePagination(c)

	rfqs, total, err := h.quotationService.ListRFQs(c.Request.Context(), page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list rfqs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch rfqs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     rfqs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// parseWeight reads a weight override query param, falling back when absent.
func parseWeight(c *gin.Context, name string, fallback float64) float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return fallback
}

// CompareQuotes scores every quotation against an RFQ. Weight overrides come
// from query params and must still sum to 100.
func (h *QuotationHandler) CompareQuotes(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	weights := metrics.Weights{
		Price:       parseWeight(c, "w_price", metrics.DefaultWeights.Price),
		LeadTime:    parseWeight(c, "w_lead_time", metrics.DefaultWeights.LeadTime),
		Quality:     parseWeight(c, "w_quality", metrics.DefaultWeights.Quality),
		Performance: parseWeight(c, "w_performance", metrics.DefaultWeights.Performance),
	}

	comparison, err := h.quotationService.Compare(c.Request.Context(), id, weights)
	if err != nil {
		respondError(c, err, http.StatusBadRequest, "")
		return
	}

	c.JSON(http.StatusOK, comparison)
}

func (h *QuotationHandler) ListPurchaseOrders(c *gin.Context) {
	page, pageSize := parsePagination(c)
	status := domain.POStatus(strings.TrimSpace(c.Query("status")))

	orders, total, err := h.quotationService.ListPurchaseOrders(c.Request.Context(), status, page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list purchase orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch purchase orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     orders,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *QuotationHandler) ListShipments(c *gin.Context) {
	page, pageSize := parsePagination(c)

	shipments, total, err := h.quotationService.ListShipments(c.Request.Context(), page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list shipments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shipments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     shipments,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
