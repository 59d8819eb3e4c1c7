package prometheus

import (
	"strconv"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusAdapter struct {
	requests     *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	rentalEvents *prometheus.CounterVec
}

// NewPrometheusAdapter registers the collectors on the default registry.
func NewPrometheusAdapter() *PrometheusAdapter {
	return NewPrometheusAdapterWithRegistry(prometheus.DefaultRegisterer)
}

func NewPrometheusAdapterWithRegistry(reg prometheus.Registerer) *PrometheusAdapter {
	p := &PrometheusAdapter{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webike_rental_http_requests_total",
			Help: "HTTP requests handled, by method, route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "webike_rental_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rentalEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "webike_rental_events_total",
			Help: "Bike lifecycle operations, by event and outcome.",
		}, []string{"event", "outcome"}),
	}
	reg.MustRegister(p.requests, p.duration, p.rentalEvents)
	return p
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(c.Writer.Status())
	p.requests.WithLabelValues(c.Request.Method, route, status).Inc()
	p.duration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordRentalEvent(event string, outcome string) {
	p.rentalEvents.WithLabelValues(event, outcome).Inc()
}

var _ ports.MetricsPort = (*PrometheusAdapter)(nil)
