package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its own registry so tests can construct isolated instances.
type Metrics struct {
	registry    *prometheus.Registry
	apiReq      *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		apiReq: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "journey_api_requests_total",
			Help: "API requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		apiLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "journey_api_request_duration_seconds",
			Help:    "API request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		apiInflight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "journey_api_inflight_requests",
			Help: "Requests currently being served.",
		}),
	}
}

// Middleware records count, latency and in-flight gauge per request. Routes
// are labeled by gin's route template, not the raw path, to keep cardinality
// bounded.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.apiInflight.Inc()
		c.Next()
		m.apiInflight.Dec()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.apiReq.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.apiLatency.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
