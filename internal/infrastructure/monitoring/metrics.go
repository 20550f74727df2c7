package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var processStart = time.Now()

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Upstream store metrics
	StoreCalls    *prometheus.CounterVec
	StoreDuration *prometheus.HistogramVec
	StoreErrors   *prometheus.CounterVec
	BreakerState  *prometheus.GaugeVec

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{startTime: time.Now()}

	m.RequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playapi_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.RequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playapi_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "route"},
	)
	m.ResponseSize = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playapi_http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: []float64{100, 1000, 10000, 100000, 1000000},
		},
		[]string{"method", "route"},
	)

	m.StoreCalls = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playapi_store_calls_total",
			Help: "Total number of upstream store calls",
		},
		[]string{"operation", "status"},
	)
	m.StoreDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "playapi_store_call_duration_seconds",
			Help:    "Upstream store call duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)
	m.StoreErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playapi_store_errors_total",
			Help: "Total number of failed upstream store calls",
		},
		[]string{"operation", "error_type"},
	)
	m.BreakerState = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "playapi_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"breaker"},
	)

	m.Uptime = factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "playapi_uptime_seconds",
			Help: "Service uptime in seconds",
		},
		func() float64 { return time.Since(m.startTime).Seconds() },
	)

	return m
}

// RecordHTTPRequest records an HTTP request. route is the matched route
// template so label cardinality stays bounded.
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration, respSize int64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	m.ResponseSize.WithLabelValues(method, route).Observe(float64(respSize))
}

// RecordStoreCall records an upstream call outcome.
func (m *Metrics) RecordStoreCall(operation, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.StoreCalls.WithLabelValues(operation, status).Inc()
	m.StoreDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordStoreError records a failed upstream call.
func (m *Metrics) RecordStoreError(operation, errorType string) {
	if m == nil {
		return
	}
	m.StoreErrors.WithLabelValues(operation, errorType).Inc()
}

// SetBreakerState publishes a breaker state as its numeric value.
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(name).Set(float64(state))
}

// UptimeDuration returns the time since the metrics were created, or since
// process start for nil metrics.
func (m *Metrics) UptimeDuration() time.Duration {
	if m == nil {
		return time.Since(processStart)
	}
	return time.Since(m.startTime)
}
