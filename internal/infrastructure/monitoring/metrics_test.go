package monitoring

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	router := gin.New()
	router.Use(Middleware(metrics))
	router.GET("/apps/:appId", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for _, id := range []string{"a.b", "c.d"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/apps/"+id, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", "/apps/:appId", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestStoreMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	timer := NewTimer(metrics, "app")
	d := timer.Stop("200")
	assert.GreaterOrEqual(t, d, time.Duration(0))

	metrics.RecordStoreError("app", "not_found")
	metrics.SetBreakerState("playstore", 2)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreCalls.WithLabelValues("app", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.StoreErrors.WithLabelValues("app", "not_found")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.BreakerState.WithLabelValues("playstore")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var metrics *Metrics

	assert.NotPanics(t, func() {
		metrics.RecordHTTPRequest("GET", "/", "200", time.Millisecond, 10)
		metrics.RecordStoreCall("app", "200", time.Millisecond)
		metrics.RecordStoreError("app", "timeout")
		metrics.SetBreakerState("playstore", 0)
		_ = metrics.UptimeDuration()
	})
}

func TestUptimeDuration(t *testing.T) {
	var unset *Metrics
	processUptime := unset.UptimeDuration()
	assert.Positive(t, processUptime)

	m := NewMetrics(prometheus.NewRegistry())
	assert.Less(t, m.UptimeDuration(), processUptime+time.Second)
	assert.LessOrEqual(t, m.UptimeDuration(), unset.UptimeDuration())
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.RecordStoreCall("search", "200", time.Millisecond)

	router := gin.New()
	router.GET("/metrics", Handler(reg))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "playapi_store_calls_total"))
	assert.True(t, strings.Contains(body, "playapi_uptime_seconds"))
}

func TestNewMetricsOnSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
