package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the evaluation pipeline.
type Metrics struct {
	CacheHitsTotal      prometheus.Counter
	CacheMissesTotal    prometheus.Counter
	FallbackTotal       prometheus.Counter
	RemoteFailuresTotal prometheus.Counter
	EvaluationDuration  prometheus.Histogram
}

// New registers the pipeline metrics. Registration happens once per
// process; repeated calls return the same set.
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			CacheHitsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "engine_cache_hits_total",
				Help: "Total number of evaluations served from the fingerprint cache",
			}),
			CacheMissesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "engine_cache_misses_total",
				Help: "Total number of evaluations that missed the fingerprint cache",
			}),
			FallbackTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "engine_fallback_evaluations_total",
				Help: "Total number of evaluations produced by the heuristic scorer",
			}),
			RemoteFailuresTotal: promauto.NewCounter(prometheus.CounterOpts{
				Name: "engine_remote_failures_total",
				Help: "Total number of failed remote model calls",
			}),
			EvaluationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "engine_evaluation_duration_seconds",
				Help:    "Duration of evaluate calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			}),
		}
	})
	return globalMetrics
}

func (m *Metrics) RecordCacheHit()      { m.CacheHitsTotal.Inc() }
func (m *Metrics) RecordCacheMiss()     { m.CacheMissesTotal.Inc() }
func (m *Metrics) RecordFallback()      { m.FallbackTotal.Inc() }
func (m *Metrics) RecordRemoteFailure() { m.RemoteFailuresTotal.Inc() }

func (m *Metrics) ObserveEvaluation(d time.Duration) {
	m.EvaluationDuration.Observe(d.Seconds())
}
