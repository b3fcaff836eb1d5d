package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Search and catalog Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partsearch",
			Name:      "search_requests_total",
			Help:      "Total number of searches by intent and the phase that produced the results",
		},
		[]string{"intent", "phase"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "partsearch",
			Name:      "search_results",
			Help:      "Number of products returned per search",
			Buckets:   []float64{0, 1, 2, 3, 4, 5},
		},
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "partsearch",
			Name:      "search_duration_seconds",
			Help:      "Search pipeline duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	QueryCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partsearch",
			Name:      "query_cache_total",
			Help:      "Query result cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	CatalogProducts = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "partsearch",
			Name:      "catalog_products",
			Help:      "Number of products in the active catalog snapshot",
		},
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "partsearch",
			Name:      "catalog_reloads_total",
			Help:      "Catalog reload attempts by outcome",
		},
		[]string{"status"}, // "ok" / "error"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search and catalog metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(QueryCacheTotal)
	prometheus.MustRegister(CatalogProducts)
	prometheus.MustRegister(CatalogReloadsTotal)
	searchMetricsRegistered = true
}

// ObserveSearch records one completed search.
func ObserveSearch(intent, phase string, results int, elapsed time.Duration) {
	if intent == "" {
		intent = "none"
	}
	SearchRequestsTotal.WithLabelValues(intent, phase).Inc()
	SearchResults.Observe(float64(results))
	SearchDuration.Observe(elapsed.Seconds())
}
