package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/phrazzld/sanmei-api/internal/domain"
	"github.com/phrazzld/sanmei-api/internal/platform/metrics"
)

// DefaultCacheSize is the number of reports kept when no size is configured.
const DefaultCacheSize = 1024

// cachedReadingService memoizes reports by birth input and reference year.
type cachedReadingService struct {
	next     ReadingService
	cache    *lru.Cache[string, *Report]
	observer metrics.Observer
	logger   *slog.Logger
}

// NewCachedReadingService wraps next with an LRU cache of the given size.
// Only successful reports are cached. Reports are shared between callers and
// must not be modified.
func NewCachedReadingService(
	next ReadingService,
	size int,
	observer metrics.Observer,
	logger *slog.Logger,
) (ReadingService, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: next reading service", ErrNilDependency)
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, *Report](size)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	if observer == nil {
		observer = metrics.Nop()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &cachedReadingService{
		next:     next,
		cache:    cache,
		observer: observer,
		logger:   logger.With(slog.String("component", "reading_cache")),
	}, nil
}

// Compute implements ReadingService.Compute
func (s *cachedReadingService) Compute(
	ctx context.Context,
	in domain.BirthInput,
	now time.Time,
) (*Report, error) {
	key := in.Key() + "@" + strconv.Itoa(now.Year())

	if report, ok := s.cache.Get(key); ok {
		s.observer.RecordCacheLookup(true)
		return report, nil
	}
	s.observer.RecordCacheLookup(false)

	report, err := s.next.Compute(ctx, in, now)
	if err != nil {
		return nil, err
	}

	if evicted := s.cache.Add(key, report); evicted {
		s.logger.Debug("report cache full, evicted oldest entry")
	}
	return report, nil
}
