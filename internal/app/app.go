package app

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/sanmei-api/internal/batch"
	"github.com/phrazzld/sanmei-api/internal/config"
	"github.com/phrazzld/sanmei-api/internal/domain/solarterm"
	"github.com/phrazzld/sanmei-api/internal/platform/metrics"
	"github.com/phrazzld/sanmei-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Application holds the wired components of the service.
type Application struct {
	config   *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry

	readingService service.ReadingService
	runner         *batch.Runner
}

// New wires the application from cfg. Metrics are registered with a private
// registry served at /metrics.
func New(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config", service.ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &Application{
		config:   cfg,
		logger:   logger,
		registry: prometheus.NewRegistry(),
	}

	if err := app.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("failed to register go collector: %w", err)
	}
	observer, err := metrics.NewPrometheusObserver(metrics.DefaultNamespace, app.registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics observer: %w", err)
	}

	app.readingService, err = NewReadingService(cfg, observer, logger)
	if err != nil {
		return nil, err
	}

	app.runner, err = batch.NewRunner(app.readingService, batch.Config{
		MaxItems:    cfg.Batch.MaxItems,
		Concurrency: cfg.Batch.Concurrency,
	}, observer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch runner: %w", err)
	}

	logger.Info("Application initialized successfully",
		"daiun_steps", cfg.Engine.DaiunSteps,
		"nenun_years", cfg.Engine.NenunYears,
		"cache_size", cfg.Cache.Size,
		"batch_concurrency", cfg.Batch.Concurrency)
	return app, nil
}

// NewReadingService builds the reading service described by cfg: the
// estimator with any configured overrides, the fortune-cycle horizons and,
// when the cache size is positive, an LRU cache in front.
func NewReadingService(cfg *config.Config, observer metrics.Observer, logger *slog.Logger) (service.ReadingService, error) {
	est, err := newEstimator(cfg.Engine.SolarTermOverridesFile)
	if err != nil {
		return nil, err
	}

	params := service.NewParams(service.ParamsConfig{
		DaiunSteps: cfg.Engine.DaiunSteps,
		NenunYears: cfg.Engine.NenunYears,
	})
	svc, err := service.NewReadingService(params, est, observer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading service: %w", err)
	}

	if cfg.Cache.Size <= 0 {
		return svc, nil
	}
	cached, err := service.NewCachedReadingService(svc, cfg.Cache.Size, observer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create report cache: %w", err)
	}
	return cached, nil
}

func newEstimator(overridesFile string) (*solarterm.Estimator, error) {
	if overridesFile == "" {
		return solarterm.Default(), nil
	}
	extra, err := solarterm.LoadOverridesFile(overridesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load solar-term overrides: %w", err)
	}
	est, err := solarterm.NewEstimator(extra...)
	if err != nil {
		return nil, fmt.Errorf("failed to build solar-term estimator: %w", err)
	}
	return est, nil
}
