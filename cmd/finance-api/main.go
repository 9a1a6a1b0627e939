package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finance-api/internal/api"
	"finance-api/internal/api/handlers"
	"finance-api/internal/repository"
	"finance-api/internal/service"
	"finance-api/pkg/auth"
	"finance-api/pkg/config"
	"finance-api/pkg/kafka"
	"finance-api/pkg/logger"
	"finance-api/pkg/postgres"

	"go.uber.org/zap"
)

// @title Finance API
// @version 1.0
// @description Personal finance service: accounts and their debit/credit transactions

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting finance-api")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)

	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	accountService := service.NewAccountService(accountRepo, appLogger)
	txService := service.NewTransactionService(txRepo, accountRepo, appLogger)
	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, appLogger)
		defer publisher.Close()
		txService.WithEvents(publisher)
		appLogger.Info("Publishing transaction events",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	accountHandler := handlers.NewAccountHandler(accountService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)

	app := api.SetupRouter(authHandler, accountHandler, txHandler, jwtManager, db, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
