// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/api/handlers"
	"github.com/procuredash/backend-go/internal/api/middleware"
	"github.com/procuredash/backend-go/internal/service"
)

type Services struct {
	VendorService    *service.VendorService
	FinanceService   *service.FinanceService
	InventoryService *service.InventoryService
	QuotationService *service.QuotationService
	GateService      *service.GateService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	if services != nil {
		if services.VendorService != nil {
			vendorHandler := handlers.NewVendorHandler(services.VendorService)
			vendorGroup := apiGroup.Group("/vendors")
			{
				vendorGroup.GET("", vendorHandler.ListVendors)
				vendorGroup.POST("", vendorHandler.CreateVendor)
				vendorGroup.GET("/:id", vendorHandler.GetVendor)
				vendorGroup.GET("/:id/scorecard", vendorHandler.GetScorecard)
				vendorGroup.PUT("/:id/risk", vendorHandler.SetRiskOverride)
				vendorGroup.GET("/:id/actions", vendorHandler.GetActions)
				vendorGroup.POST("/:id/actions", vendorHandler.ApplyAction)
				vendorGroup.GET("/:id/history", vendorHandler.GetHistory)
				vendorGroup.GET("/:id/documents", vendorHandler.ListDocuments)
				vendorGroup.POST("/:id/documents", vendorHandler.UploadDocument)
			}
			documentGroup := apiGroup.Group("/documents")
			{
				documentGroup.POST("/:id/review", vendorHandler.ReviewDocument)
				documentGroup.GET("/:id/download", vendorHandler.DownloadDocument)
			}
		}

		if services.FinanceService != nil {
			financeHandler := handlers.NewFinanceHandler(services.FinanceService)
			financeGroup := apiGroup.Group("/finance")
			{
				financeGroup.GET("/aging", financeHandler.GetAgingTable)
				financeGroup.GET("/aging/report", financeHandler.GetAgingReport)
			}
		}

		if services.InventoryService != nil {
			inventoryHandler := handlers.NewInventoryHandler(services.InventoryService)
			inventoryGroup := apiGroup.Group("/inventory")
			{
				inventoryGroup.GET("/items", inventoryHandler.ListItems)
				inventoryGroup.GET("/reorder", inventoryHandler.GetReorderDashboard)
				inventoryGroup.GET("/forecast/:code", inventoryHandler.GetForecast)
			}
		}

		if services.QuotationService != nil {
			quotationHandler := handlers.NewQuotationHandler(services.QuotationService)
			rfqGroup := apiGroup.Group("/rfqs")
			{
				rfqGroup.GET("", quotationHandler.ListRFQs)
				rfqGroup.GET("/:id/compare", quotationHandler.CompareQuotes)
			}
			apiGroup.GET("/purchase-orders", quotationHandler.ListPurchaseOrders)
			apiGroup.GET("/shipments", quotationHandler.ListShipments)
		}

		if services.GateService != nil {
			gateHandler := handlers.NewGateHandler(services.GateService)
			gateGroup := apiGroup.Group("/gate")
			{
				gateGroup.GET("/vehicles", gateHandler.ListVehicles)
				gateGroup.POST("/vehicles", gateHandler.RegisterVehicle)
				gateGroup.POST("/vehicles/:id/checkout", gateHandler.CheckOutVehicle)
				gateGroup.GET("/materials", gateHandler.ListMaterials)
				gateGroup.POST("/materials", gateHandler.RegisterMaterial)
				gateGroup.POST("/materials/:id/checkout", gateHandler.CheckOutMaterial)
				gateGroup.GET("/visitors", gateHandler.ListVisitors)
				gateGroup.POST("/visitors", gateHandler.RegisterVisitor)
				gateGroup.POST("/visitors/:id/checkout", gateHandler.CheckOutVisitor)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
