package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-intake-service/config"
	_ "task-intake-service/docs" // Swagger docs
	"task-intake-service/internal/httpserver"
	"task-intake-service/pkg/log"
)

// @title       Task Intake Service API
// @description Accepts a line of free text and returns a structured task record.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Intake Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.RateLimit.PerMin > 0 {
		logger.Infof(ctx, "Rate limit: %d req/min per client", cfg.RateLimit.PerMin)
	}

	// 3. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return err
	}

	// 4. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}
