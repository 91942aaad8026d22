// Package metrics defines the Prometheus collectors this repository can
// actually populate and exposes an HTTP handler for local scraping during
// `build`/`search`.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors populated by the corpus build
// pipeline, the preprocessing cache, and the query engine.
type Metrics struct {
	BuildDuration         prometheus.Histogram
	DocsIndexedTotal      prometheus.Counter
	FieldAvgDocLength     *prometheus.GaugeVec
	CacheHitsTotal        prometheus.Counter
	CacheMissesTotal      prometheus.Counter
	QueryLatency          prometheus.Histogram
	PrefixExpansionsTotal prometheus.Counter
	CircuitBreakerState   *prometheus.GaugeVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		BuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "corpus_build_duration_seconds",
				Help:    "Wall-clock time to load, preprocess, and finalize the corpus.",
				Buckets: prometheus.DefBuckets,
			},
		),
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_indexed_total",
				Help: "Total documents added to the index across all build runs.",
			},
		),
		FieldAvgDocLength: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "field_avg_doc_length",
				Help: "Average document length per indexed field, after the last finalize.",
			},
			[]string{"field"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "preprocess_cache_hits_total",
				Help: "Total preprocessing cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "preprocess_cache_misses_total",
				Help: "Total preprocessing cache misses.",
			},
		),
		QueryLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "query_latency_seconds",
				Help:    "Query Engine search() latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		PrefixExpansionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "prefix_expansions_total",
				Help: "Total matched terms, summed over results, that are not literal query words (prefix-expanded matches).",
			},
		),
		CircuitBreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open).",
			},
			[]string{"name"},
		),
	}

	prometheus.MustRegister(
		m.BuildDuration,
		m.DocsIndexedTotal,
		m.FieldAvgDocLength,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.QueryLatency,
		m.PrefixExpansionsTotal,
		m.CircuitBreakerState,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
