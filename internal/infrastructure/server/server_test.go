package server

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/config"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/logging"
)

// developerScraper serves one app and records the developer ids it is asked for.
type developerScraper struct {
	playstore.Scraper
	app    *playstore.App
	devIDs []string
}

func (s *developerScraper) App(context.Context, playstore.AppOptions) (*playstore.App, error) {
	return s.app, nil
}

func (s *developerScraper) Developer(_ context.Context, opts playstore.DeveloperOptions) ([]*playstore.App, error) {
	s.devIDs = append(s.devIDs, opts.DevID)
	return []*playstore.App{s.app}, nil
}

func newTestServer(t *testing.T, store http.Handler, mutate func(*config.Config)) *Server {
	t.Helper()

	upstream := httptest.NewServer(store)
	t.Cleanup(upstream.Close)

	cfg := config.Default()
	cfg.Store.BaseURL = upstream.URL
	cfg.Store.Retries = 0
	cfg.Store.Timeout = config.Duration(2 * time.Second)
	cfg.RateLimit.Enabled = false
	if mutate != nil {
		mutate(cfg)
	}

	srv, err := NewServer(cfg, WithLogger(logging.NewNop()))
	require.NoError(t, err)
	return srv
}

func serve(srv *Server, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Host = "example.test"
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.BasePath = "api"

	_, err := NewServer(cfg, WithLogger(logging.NewNop()))
	assert.Error(t, err)
}

func TestIndexUnderBasePath(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	w := serve(srv, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w.Body)
	assert.Equal(t, "http://example.test/api/apps", body["apps"])
	assert.Equal(t, "http://example.test/api/developers", body["developers"])
	assert.Equal(t, "http://example.test/api/categories", body["categories"])
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestStoreNotFoundBecomesBadRequest(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	w := serve(srv, http.MethodGet, "/api/apps/com.missing", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"App not found (404)"}`, w.Body.String())
}

func TestDeveloperLinkRoundTrip(t *testing.T) {
	tests := []struct {
		developer string
		wantLink  string
	}{
		{"AC/DC Games", "http://example.test/api/developers/AC%2FDC%20Games"},
		{"Wikimedia Foundation", "http://example.test/api/developers/Wikimedia%20Foundation"},
		{"5700313618786177705", "http://example.test/api/developers/5700313618786177705"},
	}

	for _, tt := range tests {
		t.Run(tt.developer, func(t *testing.T) {
			scraper := &developerScraper{app: &playstore.App{AppID: "com.x", Developer: tt.developer}}
			cfg := config.Default()
			cfg.RateLimit.Enabled = false
			srv, err := NewServer(cfg, WithLogger(logging.NewNop()), WithScraper(scraper))
			require.NoError(t, err)

			w := serve(srv, http.MethodGet, "/api/apps/com.x", nil)
			require.Equal(t, http.StatusOK, w.Code)
			developer, ok := decode(t, w.Body)["developer"].(map[string]interface{})
			require.True(t, ok)
			link, _ := developer["url"].(string)
			assert.Equal(t, tt.wantLink, link)

			w = serve(srv, http.MethodGet, strings.TrimPrefix(link, "http://example.test"), nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.developer, decode(t, w.Body)["devId"])
			assert.Equal(t, []string{tt.developer}, scraper.devIDs)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	w := serve(srv, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, w.Body.String())
}

func TestHealthReportsBreaker(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	w := serve(srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w.Body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "closed", body["store"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	serve(srv, http.MethodGet, "/api/apps/com.missing", nil)

	w := serve(srv, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "playapi_http_requests_total")
	assert.Contains(t, w.Body.String(), `playapi_store_calls_total{operation="app",status="not_found"}`)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestMetricsDisabled(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), func(c *config.Config) {
		c.Metrics.Enabled = false
	})

	w := serve(srv, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompressedResponses(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	// The metrics page is large enough to clear the compression threshold.
	w := serve(srv, http.MethodGet, "/metrics", http.Header{"Accept-Encoding": {"gzip"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), "playapi_uptime_seconds")
}

func TestRateLimitEnabled(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), func(c *config.Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.RequestsPerSecond = 1
		c.RateLimit.Burst = 1
	})

	assert.Equal(t, http.StatusOK, serve(srv, http.MethodGet, "/api/", nil).Code)

	w := serve(srv, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"message":"Too many requests, please try again later."}`, w.Body.String())
}

func TestGlobalRateLimitAcrossClients(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), func(c *config.Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.GlobalRequestsPerSecond = 1
		c.RateLimit.GlobalBurst = 2
	})

	for i, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		w := serve(srv, http.MethodGet, "/api/", http.Header{"X-Forwarded-For": {ip}})
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := serve(srv, http.MethodGet, "/api/", http.Header{"X-Forwarded-For": {"10.0.0.3"}})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, http.NotFoundHandler(), nil)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.NoError(t, srv.Close())
}
