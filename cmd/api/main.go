package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/kuberai/gold-service/internal/domain/entity"
	assistantUseCase "github.com/kuberai/gold-service/internal/domain/usecase/assistant"
	purchaseUseCase "github.com/kuberai/gold-service/internal/domain/usecase/purchase"
	userUseCase "github.com/kuberai/gold-service/internal/domain/usecase/user"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/api/handler"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/api/routes"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/database"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/logger"
	"github.com/kuberai/gold-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/kuberai/gold-service/internal/infrastructure/adapter/time"
	"github.com/kuberai/gold-service/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	defer func() { _ = appLogger.Flush() }()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		LogLevel:        cfg.Logger.Level,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	conn, err := database.NewConnection(dbConfig)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	// Create the schema idempotently
	migrator := database.NewMigrator(conn.DB, appLogger)
	if err := migrator.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(conn.DB, appLogger)

	// Convert the configured rate to paise per gram
	ratePaisePerGram, err := entity.PaiseFromINR(cfg.Gold.RatePerGram)
	if err != nil || ratePaisePerGram <= 0 {
		log.Fatalf("Invalid gold rate: %v", cfg.Gold.RatePerGram)
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, purchaseRepo, tp, appLogger)
	purchaseUseCaseImpl := purchaseUseCase.NewService(userRepo, purchaseRepo, ratePaisePerGram, tp, appLogger)
	assistantUseCaseImpl := assistantUseCase.NewService(userRepo, appLogger)

	// Initialize API handlers
	healthHandler := handler.NewHealthHandler()
	userHandler := handler.NewUserHandler(userUseCaseImpl, appLogger)
	assistantHandler := handler.NewAssistantHandler(assistantUseCaseImpl, appLogger)
	purchaseHandler := handler.NewPurchaseHandler(purchaseUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, healthHandler, userHandler, assistantHandler, purchaseHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":        cfg.Server.Port,
			"env":         cfg.Environment,
			"driver":      cfg.Database.Driver,
			"ratePerGram": cfg.Gold.RatePerGram,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or KG_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or KG_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or KG_DB_NAME environment variable)")
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be %s or %s",
			cfg.Database.Driver, database.DriverSQLite, database.DriverPostgres)
	}

	if cfg.Gold.RatePerGram <= 0 {
		missingConfigs = append(missingConfigs, "gold.ratePerGram")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
