package main

import (
	"context"
	"fmt"
	"log"

	"chiku/backend/internal/config"
	appmw "chiku/backend/internal/httpapi/middleware"
	"chiku/backend/internal/httpapi/router"
	"chiku/backend/internal/logging"
	"chiku/backend/internal/server"
	"go.uber.org/zap"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var metrics *appmw.Metrics
	if cfg.MetricsEnabled {
		metrics = appmw.NewMetrics()
	}

	handler, err := router.New(cfg, logger, metrics)
	if err != nil {
		logger.Error("failed to build router", zap.Error(err))
		return err
	}

	srv := server.New(server.Config{
		Address:         cfg.Address(),
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, handler, logger)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
