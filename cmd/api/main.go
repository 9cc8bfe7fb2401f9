package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/SpirahlDev/sig-backend/internal/config"
	httpDelivery "github.com/SpirahlDev/sig-backend/internal/delivery/http"
	"github.com/SpirahlDev/sig-backend/internal/delivery/http/handler"
	"github.com/SpirahlDev/sig-backend/internal/pkg/logger"
	"github.com/SpirahlDev/sig-backend/internal/pkg/queryparams"
	"github.com/SpirahlDev/sig-backend/internal/repository/postgres"
	"github.com/SpirahlDev/sig-backend/internal/storage/local"
	"github.com/SpirahlDev/sig-backend/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SIG Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Run schema migrations
	if err := postgres.RunMigrations(cfg.GetDatabaseURL()); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Migrations applied")

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 5. Initialize blob storage
	blobStore, err := local.New(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize file storage", zap.Error(err))
	}

	// 6. Initialize repositories
	photoRepo := postgres.NewPhotoRepository(db)
	siteRepo := postgres.NewSiteRepository(db, photoRepo)
	siteTypeRepo := postgres.NewSiteTypeRepository(db)

	log.Info("Repositories initialized")

	// 7. Per-resource query whitelists
	siteSpec := queryparams.MustSpec(postgres.SiteColumns).
		WithSearchableFields([]string{"name", "description", "city"}).
		WithPaginationLimits(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)

	siteTypeSpec := queryparams.MustSpec(postgres.SiteTypeColumns).
		WithSearchableFields([]string{"code", "label"}).
		WithPaginationLimits(cfg.Pagination.DefaultLimit, cfg.Pagination.MaxLimit)

	// 8. Initialize use cases
	siteUC := usecase.NewSiteUseCase(siteRepo, photoRepo, siteTypeRepo, blobStore, db, siteSpec, log)
	siteTypeUC := usecase.NewSiteTypeUseCase(siteTypeRepo, siteTypeSpec, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers and server
	siteHandler := handler.NewSiteHandler(siteUC, cfg.IsDebug(), log)
	siteTypeHandler := handler.NewSiteTypeHandler(siteTypeUC, cfg.IsDebug(), log)

	server := httpDelivery.NewServer(cfg, log, siteHandler, siteTypeHandler, db.Health)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
