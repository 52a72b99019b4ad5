// Package metrics exports chart computation telemetry to Prometheus.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "sanmei"

// Observer captures telemetry for chart computations.
type Observer interface {
	RecordCompute(duration time.Duration, err error)
	RecordCacheLookup(hit bool)
	RecordBatch(size int, duration time.Duration, err error)
}

// PrometheusObserver exports computation metrics to Prometheus.
type PrometheusObserver struct {
	computeDuration prometheus.Histogram
	computeTotal    *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	batchSize       prometheus.Histogram
	batchDuration   prometheus.Histogram
	batchErrors     prometheus.Counter
}

// NewPrometheusObserver creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewPrometheusObserver(namespace string, reg prometheus.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &PrometheusObserver{
		computeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chart_compute_duration_seconds",
			Help:      "Latency of computing a full chart report.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),
		computeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_computations_total",
			Help:      "Chart reports computed, by result.",
		}, []string{"result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_cache_lookups_total",
			Help:      "Report cache lookups, by outcome.",
		}, []string{"outcome"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of charts per batch request.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_duration_seconds",
			Help:      "Latency of computing a batch of charts.",
			Buckets:   prometheus.DefBuckets,
		}),
		batchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_errors_total",
			Help:      "Batches that failed.",
		}),
	}

	collectors := []prometheus.Collector{
		o.computeDuration, o.computeTotal, o.cacheLookups,
		o.batchSize, o.batchDuration, o.batchErrors,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register chart metric: %w", err)
		}
	}
	return o, nil
}

// RecordCompute tracks one report computation.
func (o *PrometheusObserver) RecordCompute(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.computeDuration.Observe(duration.Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	o.computeTotal.WithLabelValues(result).Inc()
}

// RecordCacheLookup counts a report cache hit or miss.
func (o *PrometheusObserver) RecordCacheLookup(hit bool) {
	if o == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	o.cacheLookups.WithLabelValues(outcome).Inc()
}

// RecordBatch tracks one batch request.
func (o *PrometheusObserver) RecordBatch(size int, duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.batchSize.Observe(float64(size))
	o.batchDuration.Observe(duration.Seconds())
	if err != nil {
		o.batchErrors.Inc()
	}
}

type nopObserver struct{}

func (nopObserver) RecordCompute(time.Duration, error) {}

func (nopObserver) RecordCacheLookup(bool) {}

func (nopObserver) RecordBatch(int, time.Duration, error) {}

// Nop returns an Observer that discards everything.
func Nop() Observer {
	return nopObserver{}
}
