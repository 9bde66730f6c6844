package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/service"
	"github.com/rs/zerolog/log"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	page, pageSize := parsePagination(c)
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))

	items, total, err := h.inventoryService.ListItems(c.Request.Context(), search, category, page, pageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list inventory items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch inventory items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetReorderDashboard returns the reorder advisor output for every SKU,
// ordered critical first.
func (h *InventoryHandler) GetReorderDashboard(c *gin.Context) {
	dashboard, err := h.inventoryService.ReorderDashboard(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to build reorder dashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reorder dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// GetForecast returns the demand forecast series for a SKU code.
func (h *InventoryHandler) GetForecast(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item code is required"})
		return
	}

	forecast, err := h.inventoryService.Forecast(c.Request.Context(), code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to fetch forecast")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch forecast"})
		return
	}
	if forecast == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no forecast for item " + code})
		return
	}

	c.JSON(http.StatusOK, forecast)
}
