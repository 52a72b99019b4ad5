package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
	"github.com/phrazzld/sanmei-api/internal/platform/metrics"
	"github.com/phrazzld/sanmei-api/internal/service"
	"golang.org/x/sync/errgroup"
)

// Batch errors.
var (
	ErrEmptyBatch    = errors.New("batch has no items")
	ErrTooManyItems  = errors.New("batch has too many items")
	ErrNilDependency = errors.New("required dependency is nil")
)

// Config bounds a Runner.
type Config struct {
	// MaxItems is the largest accepted batch.
	MaxItems int
	// Concurrency is the number of reports computed at once.
	// If zero or negative, defaults to 1.
	Concurrency int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{MaxItems: 100, Concurrency: 8}
}

// Result is the outcome of one batch item. Exactly one of Report and Err is
// set.
type Result struct {
	ID     uuid.UUID
	Index  int
	Input  domain.BirthInput
	Report *service.Report
	Err    error
}

// Runner fans a batch of inputs out to a ReadingService.
type Runner struct {
	svc      service.ReadingService
	cfg      Config
	observer metrics.Observer
	logger   *slog.Logger
}

// NewRunner creates a Runner. A nil observer discards metrics and a nil
// logger falls back to slog.Default().
func NewRunner(svc service.ReadingService, cfg Config, observer metrics.Observer, log *slog.Logger) (*Runner, error) {
	if svc == nil {
		return nil, fmt.Errorf("%w: reading service", ErrNilDependency)
	}
	if log == nil {
		log = slog.Default()
	}
	if cfg.Concurrency <= 0 {
		log.Warn("invalid batch concurrency specified, using default",
			"specified_count", cfg.Concurrency,
			"default_count", 1)
		cfg.Concurrency = 1
	}
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if observer == nil {
		observer = metrics.Nop()
	}

	return &Runner{
		svc:      svc,
		cfg:      cfg,
		observer: observer,
		logger:   log.With(slog.String("component", "batch_runner")),
	}, nil
}

// MaxItems returns the largest batch Run accepts.
func (r *Runner) MaxItems() int {
	return r.cfg.MaxItems
}

// Run computes a report for every input. Item failures are reported in the
// matching Result; Run itself fails only for an empty or oversized batch or
// when ctx is done before every item finished.
func (r *Runner) Run(ctx context.Context, inputs []domain.BirthInput, now time.Time) (results []Result, err error) {
	start := time.Now()
	defer func() {
		r.observer.RecordBatch(len(inputs), time.Since(start), err)
	}()

	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(inputs) > r.cfg.MaxItems {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(inputs), r.cfg.MaxItems)
	}

	log := logger.FromContextOrDefault(ctx, r.logger)
	batchID := uuid.New()
	log = log.With(slog.String("batch_id", batchID.String()))

	results = make([]Result, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Concurrency)

	for i, in := range inputs {
		results[i] = Result{ID: uuid.New(), Index: i, Input: in}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := r.svc.Compute(gctx, in, now)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				results[i].Err = err
				return nil
			}
			results[i].Report = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("batch aborted", slog.Int("items", len(inputs)), slog.String("error", err.Error()))
		return nil, fmt.Errorf("batch aborted: %w", err)
	}
	// The loop may stop early without any goroutine seeing the cancellation.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch aborted: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	log.Debug("batch computed",
		slog.Int("items", len(inputs)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)))
	return results, nil
}
