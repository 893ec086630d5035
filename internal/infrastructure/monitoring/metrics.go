// Package monitoring handles Prometheus metrics collection
package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus collectors
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	PlansGenerated  prometheus.Counter
	InsightReports  prometheus.Counter
	UsersRegistered prometheus.Counter
	FoodLogsCreated prometheus.Counter

	// System metrics
	CatalogSize     prometheus.Gauge
	cacheOperations *prometheus.CounterVec
}

// NewMetrics registers and returns the application collectors
func NewMetrics() *Metrics {
	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriplan_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "nutriplan_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		PlansGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nutriplan_meal_plans_generated_total",
			Help: "Total number of meal plans generated",
		}),
		InsightReports: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nutriplan_insight_reports_total",
			Help: "Total number of nutrition insight reports produced",
		}),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nutriplan_users_registered_total",
			Help: "Total number of registered users",
		}),
		FoodLogsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nutriplan_food_logs_created_total",
			Help: "Total number of food log entries created",
		}),
		CatalogSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "nutriplan_catalog_foods",
			Help: "Number of foods currently loaded in the catalog",
		}),
		cacheOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "nutriplan_cache_operations_total",
				Help: "Total number of cache operations by result",
			},
			[]string{"operation", "result"},
		),
	}
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCacheOperation records the outcome of a cache operation
func (m *Metrics) RecordCacheOperation(operation, result string) {
	m.cacheOperations.WithLabelValues(operation, result).Inc()
}
