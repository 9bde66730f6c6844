// backend-go/cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/procuredash/backend-go/internal/api"
	"github.com/procuredash/backend-go/internal/cache"
	"github.com/procuredash/backend-go/internal/config"
	"github.com/procuredash/backend-go/internal/gatelog"
	"github.com/procuredash/backend-go/internal/repository/postgres"
	"github.com/procuredash/backend-go/internal/service"
	"github.com/procuredash/backend-go/internal/storage"
	"github.com/procuredash/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Document storage: object storage when configured, local files otherwise
	files := newDocumentStorage(cfg)

	// Gate log store
	gateStore, err := gatelog.NewStore(cfg.App.GateLogPath)
	if err != nil {
		logger.Log.Fatal().Err(err).Str("path", cfg.App.GateLogPath).Msg("Failed to open gate log")
	}

	// Caches fall back to noop when Redis is disabled or unreachable
	agingCache, err := cache.NewAgingReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Aging report cache unavailable, using noop cache")
		agingCache = cache.NewNoopAgingReportCache()
	}
	reorderCache, err := cache.NewReorderDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Reorder dashboard cache unavailable, using noop cache")
		reorderCache = cache.NewNoopReorderDashboardCache()
	}

	// Initialize services
	services := &api.Services{
		VendorService:    service.NewVendorService(postgres.NewVendorRepository(db), files),
		FinanceService:   service.NewFinanceService(postgres.NewFinanceRepository(db), agingCache),
		InventoryService: service.NewInventoryService(postgres.NewInventoryRepository(db), reorderCache),
		QuotationService: service.NewQuotationService(postgres.NewQuotationRepository(db)),
		GateService:      service.NewGateService(gateStore),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

func newDocumentStorage(cfg *config.Config) storage.DocumentStorage {
	if cfg.Storage.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := storage.NewMinioClient(ctx, storage.MinioConfig{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			Region:    cfg.Storage.Region,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			logger.Log.Fatal().Err(err).Msg("Failed to connect to object storage")
		}
		return client
	}

	local, err := storage.NewLocalStorage(cfg.App.UploadDir)
	if err != nil {
		logger.Log.Fatal().Err(err).Str("dir", cfg.App.UploadDir).Msg("Failed to open local document storage")
	}
	logger.Log.Info().Str("dir", cfg.App.UploadDir).Msg("Object storage disabled, storing documents locally")
	return local
}
