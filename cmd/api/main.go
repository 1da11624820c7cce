package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sellbridge/consign-api/internal/application/service"
	"github.com/sellbridge/consign-api/internal/config"
	"github.com/sellbridge/consign-api/internal/infrastructure/database"
	"github.com/sellbridge/consign-api/internal/infrastructure/repository"
	"github.com/sellbridge/consign-api/internal/presentation/http/handler"
	"github.com/sellbridge/consign-api/internal/presentation/http/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	consignorRepo := repository.NewConsignorRepository(db)
	itemRepo := repository.NewItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	refundRepo := repository.NewRefundRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	consignorService := service.NewConsignorService(consignorRepo)
	itemService := service.NewItemService(itemRepo, consignorRepo)
	saleService := service.NewSaleService(saleRepo, itemRepo, consignorRepo, &cfg.Sales)
	refundService := service.NewRefundService(refundRepo, saleRepo, itemRepo)
	payoutService := service.NewPayoutService(consignorRepo, saleRepo, refundRepo, payoutRepo, &cfg.Fees)
	dashboardService := service.NewDashboardService(consignorRepo, payoutRepo, payoutService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Consignor: handler.NewConsignorHandler(consignorService),
		Item:      handler.NewItemHandler(itemService),
		Sale:      handler.NewSaleHandler(saleService, refundService),
		Payout:    handler.NewPayoutHandler(payoutService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
