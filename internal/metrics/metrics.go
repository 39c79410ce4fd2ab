// Package metrics provides Prometheus metrics collection for the lysate impact service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ScenarioCalculationsTotal tracks calculations by operation and outcome.
	ScenarioCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_calculations_total",
			Help: "Total number of scenario calculations",
		},
		[]string{"operation", "status"},
	)

	// ScenarioCalculationDuration tracks calculation duration by operation.
	ScenarioCalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scenario_calculation_duration_seconds",
			Help:    "Scenario calculation duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"operation"},
	)

	// ExportsTotal tracks table exports by table and outcome.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scenario_exports_total",
			Help: "Total number of exported tables",
		},
		[]string{"table", "status"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CacheEvictions tracks entries evicted from the scenario cache.
	CacheEvictions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_evictions",
			Help: "Entries evicted from the scenario cache",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordScenarioCalculation records metrics for one calculator operation.
func RecordScenarioCalculation(operation string, duration time.Duration, status string) {
	ScenarioCalculationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	ScenarioCalculationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordExport records metrics for one exported table.
func RecordExport(table, status string) {
	ExportsTotal.WithLabelValues(table, status).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheCapacity updates the cache capacity gauge.
func UpdateCacheCapacity(capacity int) {
	CacheCapacity.Set(float64(capacity))
}

// UpdateCacheEvictions updates the cache evictions gauge.
func UpdateCacheEvictions(evictions int64) {
	CacheEvictions.Set(float64(evictions))
}
