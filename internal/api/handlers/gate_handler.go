package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/domain"
	"github.com/procuredash/backend-go/internal/service"
)

type GateHandler struct {
	gateService *service.GateService
}

func NewGateHandler(gateService *service.GateService) *GateHandler {
	return &GateHandler{gateService: gateService}
}

func (h *GateHandler) ListVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.gateService.Vehicles()})
}

func (h *GateHandler) RegisterVehicle(c *gin.Context) {
	var entry domain.VehicleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle payload"})
		return
	}
	if strings.TrimSpace(entry.VehicleNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle number is required"})
		return
	}

	stored, err := h.gateService.RegisterVehicle(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record vehicle entry"})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *GateHandler) CheckOutVehicle(c *gin.Context) {
	stored, err := h.gateService.CheckOutVehicle(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *GateHandler) ListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.gateService.Materials()})
}

func (h *GateHandler) RegisterMaterial(c *gin.Context) {
	var entry domain.MaterialEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid material payload"})
		return
	}
	if strings.TrimSpace(entry.GRNNumber) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "grn number is required"})
		return
	}

	stored, err := h.gateService.RegisterMaterial(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record material entry"})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *GateHandler) CheckOutMaterial(c *gin.Context) {
	stored, err := h.gateService.CheckOutMaterial(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (h *GateHandler) ListVisitors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.gateService.Visitors()})
}

func (h *GateHandler) RegisterVisitor(c *gin.Context) {
	var entry domain.VisitorEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid visitor payload"})
		return
	}
	if strings.TrimSpace(entry.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "visitor name is required"})
		return
	}

	stored, err := h.gateService.RegisterVisitor(entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record visitor entry"})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (h *GateHandler) CheckOutVisitor(c *gin.Context) {
	stored, err := h.gateService.CheckOutVisitor(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stored)
}
