package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/pasalpos/pasal-api/internal/application/service"
	"github.com/pasalpos/pasal-api/internal/config"
	"github.com/pasalpos/pasal-api/internal/infrastructure/database"
	"github.com/pasalpos/pasal-api/internal/infrastructure/repository"
	"github.com/pasalpos/pasal-api/internal/livequery"
	"github.com/pasalpos/pasal-api/internal/logger"
	"github.com/pasalpos/pasal-api/internal/presentation/http/handler"
	"github.com/pasalpos/pasal-api/internal/presentation/http/routes"
	"github.com/pasalpos/pasal-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	zapLogger, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed the starter catalog on first boot
	if err := database.Seed(db); err != nil {
		zapLogger.Warn("Failed to seed starter catalog", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionExpiry)

	// Change notification bus shared by all write paths
	bus := livequery.NewBus()

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	settingsService := service.NewSettingsService(settingsRepo, db, bus, zapLogger)
	authService := service.NewAuthService(cfg.Auth, jwtManager, zapLogger)
	catalogService := service.NewCatalogService(productRepo, bus, zapLogger)
	checkoutService := service.NewCheckoutService(saleRepo, productRepo, settingsService, bus, cfg.Checkout, zapLogger)
	salesService := service.NewSalesService(saleRepo, settingsService)
	customerService := service.NewCustomerService(customerRepo, bus)
	dashboardService := service.NewDashboardService(salesService, productRepo, customerRepo, bus)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(catalogService),
		Cart:      handler.NewCartHandler(checkoutService),
		Sales:     handler.NewSalesHandler(salesService),
		Customer:  handler.NewCustomerHandler(customerService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes and start the server
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     zapLogger,
	})

	zapLogger.Info("Starting server",
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
