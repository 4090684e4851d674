// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_nav_http_requests_total",
			Help: "Total HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "campus_nav_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// RoutesPlannedTotal counts route computations by outcome.
	RoutesPlannedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_nav_routes_planned_total",
			Help: "Route computations by whether a route was found.",
		},
		[]string{"found"},
	)

	// AssistantQueriesTotal counts assistant queries by outcome.
	AssistantQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campus_nav_assistant_queries_total",
			Help: "Assistant queries by whether a location matched.",
		},
		[]string{"matched"},
	)
)

// Middleware records request counts and latencies. It uses the route
// template (FullPath) rather than the raw URL to keep cardinality low.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}

// Handler returns the /metrics endpoint handler.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
