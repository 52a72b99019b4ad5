package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/domain/solarterm"
	"github.com/phrazzld/sanmei-api/internal/platform/logger"
	"github.com/phrazzld/sanmei-api/internal/platform/metrics"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	traceScope       = "sanmei.service"
	traceSpanCompute = "sanmei.reading.compute"
	traceAttrBirth   = "sanmei.birth"
	traceAttrGender  = "sanmei.gender"
)

// ReadingService computes chart reports.
type ReadingService interface {
	// Compute builds the report for in. now supplies the reference year of
	// the void timing. Invalid input fails with the matching domain error
	// wrapped in a ReadingServiceError.
	Compute(ctx context.Context, in domain.BirthInput, now time.Time) (*Report, error)
}

// readingServiceImpl implements the ReadingService interface
type readingServiceImpl struct {
	params    *Params
	estimator *solarterm.Estimator
	observer  metrics.Observer
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewReadingService creates a new ReadingService.
// It returns an error if the parameters are invalid. A nil estimator uses the
// embedded solar-term table, a nil observer discards metrics and a nil logger
// falls back to slog.Default().
func NewReadingService(
	params *Params,
	est *solarterm.Estimator,
	observer metrics.Observer,
	logger *slog.Logger,
) (ReadingService, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if est == nil {
		est = solarterm.Default()
	}
	if observer == nil {
		observer = metrics.Nop()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &readingServiceImpl{
		params:    params,
		estimator: est,
		observer:  observer,
		tracer:    otel.Tracer(traceScope),
		logger:    logger.With(slog.String("component", "reading_service")),
	}, nil
}

// Compute implements ReadingService.Compute
func (s *readingServiceImpl) Compute(
	ctx context.Context,
	in domain.BirthInput,
	now time.Time,
) (report *Report, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	ctx, span := s.tracer.Start(ctx, traceSpanCompute, trace.WithAttributes(
		attribute.String(traceAttrBirth, in.Key()),
		attribute.String(traceAttrGender, string(in.Gender)),
	))
	start := time.Now()
	defer func() {
		s.observer.RecordCompute(time.Since(start), err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}()

	if err := ctx.Err(); err != nil {
		return nil, NewReadingServiceError("compute", "context done", err)
	}

	report, err = BuildReport(in, now, s.params, s.estimator)
	if err != nil {
		log.Debug("chart computation rejected",
			slog.String("birth", in.Key()),
			slog.String("error", err.Error()))
		return nil, NewReadingServiceError("compute", "failed to build report", err)
	}

	log.Debug("chart computed",
		slog.String("birth", in.Key()),
		slog.Int("day_id", int(report.Pillars.Day.ID)),
		slog.Duration("elapsed", time.Since(start)))
	return report, nil
}
