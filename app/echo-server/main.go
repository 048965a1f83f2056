package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"dewaterRecommender/app/echo-server/router"
	"dewaterRecommender/business/recommender"
	"dewaterRecommender/internal/catalog"
	"dewaterRecommender/internal/classifier"
	"dewaterRecommender/internal/middleware"
	psqlRepo "dewaterRecommender/internal/repository/postgres"
	"dewaterRecommender/internal/rest"
	"dewaterRecommender/pkg/config"
	"dewaterRecommender/pkg/database"
	"dewaterRecommender/pkg/logger"
	"dewaterRecommender/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting supplier recommender", "version", cfg.App.Version)

	metrics.Init()

	// Startup load is fatal on failure: without the model and catalog
	// the service must not accept traffic.
	model, err := classifier.Load(cfg.Model.Dir)
	if err != nil {
		logger.Fatal("Failed to load classifier artifacts", "error", err)
	}

	store, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load supplier catalog", "error", err)
	}

	logger.Info("Catalog loaded", "offers", store.Len(), "source", cfg.Catalog.Source)

	// Init service
	recommenderService, err := recommender.NewRecommenderService(store, model)
	if err != nil {
		logger.Fatal("Failed to init recommender", "error", err)
	}

	// Init handler
	recommenderHandler := rest.NewRecommenderHandler(recommenderService)
	infoHandler := rest.NewInfoHandler(cfg.App.Name, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.TraceID())

	// Setup routes
	router.SetupRecommenderRoutes(e, recommenderHandler)
	router.SetupInfoRoutes(e, infoHandler)
	router.SetupMetricsRoute(e)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// loadCatalog reads the supplier dataset from the configured source into
// the immutable in-memory store.
func loadCatalog(cfg *config.Config) (*catalog.Store, error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := database.InitPostgres(cfg)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		offers, err := psqlRepo.NewSupplierRepository(db).FindAll(ctx)
		if err != nil {
			return nil, err
		}
		if len(offers) == 0 {
			return nil, fmt.Errorf("supplier_offers table is empty")
		}

		return catalog.NewStore(offers), nil

	default:
		offers, err := catalog.LoadCSV(cfg.Catalog.CSVPath)
		if err != nil {
			return nil, err
		}

		return catalog.NewStore(offers), nil
	}
}
