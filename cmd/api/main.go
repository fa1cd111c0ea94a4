package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/usecase/delta"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	err = run(cfg, appLogger)
	if err != nil {
		appLogger.Error("Server stopped with error", map[string]any{
			"error": err.Error(),
		})
	}
	_ = appLogger.Flush()

	if err != nil {
		os.Exit(1)
	}
}

// run wires the service and blocks until shutdown. Every resource it opens
// is released before it returns.
func run(cfg *config.Config, appLogger coreport.Logger) error {
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	if warnings := config.ProductionWarnings(cfg); len(warnings) > 0 {
		appLogger.Warn("Potential security issues in production configuration", map[string]any{
			"warnings": warnings,
		})
	}

	tp := timeProvider.NewRealTimeProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(database.FromAppConfig(cfg.Database, cfg.Logger.Level), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	intervalRepo := repository.NewIntervalRepository(dbManager, appLogger)

	deltaService := delta.NewService(
		intervalRepo,
		tp,
		appLogger,
		delta.WithDefaultListSize(cfg.Delta.DefaultListSize),
		delta.WithMaxListSize(cfg.Delta.MaxListSize),
	)

	deltaHandler := handler.NewDeltaHandler(deltaService, appLogger)
	intervalHandler := handler.NewIntervalHandler(deltaService, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager, tp, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, deltaHandler, intervalHandler, healthHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case err := <-serverErr:
		runErr = fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		appLogger.Info("Shutting down server...", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if runErr == nil {
		appLogger.Info("Server exited gracefully", nil)
	}
	return runErr
}
