package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cryptoshield/internal/api"
	"cryptoshield/internal/api/handlers"
	"cryptoshield/internal/repository"
	"cryptoshield/internal/service"
	"cryptoshield/pkg/config"
	"cryptoshield/pkg/logger"
	"cryptoshield/pkg/postgres"

	"go.uber.org/zap"
)

// @title CryptoShield Advisory API
// @version 1.0
// @description Rule-based crypto insurance premium advisory backend

// @host localhost:8080
// @BasePath /

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting CryptoShield advisory service")

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Repositories
	statusRepo := repository.NewStatusRepository(db, appLogger)
	chatRepo := repository.NewChatRepository(db, appLogger)

	// Services
	statusService := service.NewStatusService(statusRepo, cfg.Status.ListLimit, appLogger)
	chatService := service.NewChatService(chatRepo, appLogger)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	statusHandler := handlers.NewStatusHandler(statusService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)

	app := api.SetupRouter(healthHandler, statusHandler, chatHandler)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
