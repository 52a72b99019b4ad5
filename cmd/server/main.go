package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/sanmei-api/internal/app"
	"github.com/phrazzld/sanmei-api/internal/config"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run(ctx context.Context) error {
	application, err := initializeApp()
	if err != nil {
		return err
	}
	return application.Run(ctx)
}

func initializeApp() (*app.Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return app.New(cfg, l)
}
