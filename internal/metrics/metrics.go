package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the marketplace backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBOperationsTotal   prometheus.CounterVec
	DBOperationDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	ReordersTotal        prometheus.CounterVec
	IndexShiftsTotal     prometheus.Counter
	SearchQueriesTotal   prometheus.Counter
	MediaUploadsTotal    prometheus.CounterVec
	ListingsTotal        prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeromart_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aeromart_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "aeromart_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		DBOperationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeromart_db_operations_total",
				Help: "Total document store operations by collection and operation type",
			},
			[]string{"collection", "operation"},
		),
		DBOperationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aeromart_db_operation_duration_seconds",
				Help:    "Document store operation execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"collection", "operation"},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeromart_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeromart_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		ReordersTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeromart_listing_reorders_total",
				Help: "Total listing index reorder operations by kind (create/update)",
			},
			[]string{"kind"},
		),
		IndexShiftsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aeromart_listing_index_shifts_total",
				Help: "Total sibling records shifted while keeping the dense index ordering",
			},
		),
		SearchQueriesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aeromart_search_queries_total",
				Help: "Total relevance search queries executed",
			},
		),
		MediaUploadsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeromart_media_uploads_total",
				Help: "Total media files uploaded by kind (image/video)",
			},
			[]string{"kind"},
		),
		ListingsTotal: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "aeromart_listings_total",
				Help: "Current number of aircraft listings",
			},
		),
	}
}
