package server

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgen_http_requests_total",
			Help: "Total number of HTTP requests handled, by route and status.",
		},
		[]string{"route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "docgen_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds, by route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	rendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "docgen_renders_total",
			Help: "Render runs by output extension and outcome.",
		},
		[]string{"extension", "outcome"},
	)
)

// metricsMiddleware records request counts and latency. It labels by the
// registered route pattern, not the raw URL, so path parameters do not blow
// up the label cardinality.
func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(route, status).Inc()
		httpRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

// observeRender counts one render run. Outcome is "ok" or the error code of
// the failure.
func observeRender(extension, outcome string) {
	rendersTotal.WithLabelValues(extension, outcome).Inc()
}
