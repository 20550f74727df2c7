package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/playapi/internal/infrastructure/tracing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"production", DefaultConfig(), false},
		{"development", Config{Level: "debug", Development: true}, false},
		{"invalid level", Config{Level: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger.Logger)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)
}

func TestForContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := &Logger{Logger: zap.New(core)}

	assert.Same(t, logger, logger.ForContext(context.Background()))

	ctx := tracing.WithTraceID(context.Background(), "req_abc")
	logger.ForContext(ctx).Info("store call")

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "req_abc", entries[0].ContextMap()["trace_id"])
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	logger := &Logger{Logger: zap.New(core)}

	router := gin.New()
	router.Use(tracing.HTTPMiddleware(), Middleware(logger))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	tests := []struct {
		path      string
		wantLevel zapcore.Level
		wantCode  int64
	}{
		{"/ok?x=1", zapcore.InfoLevel, http.StatusOK},
		{"/bad", zapcore.WarnLevel, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set(tracing.Header, "trace-xyz")
			router.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.TakeAll()
			require.Len(t, entries, 1)

			entry := entries[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, "request", entry.Message)

			fields := entry.ContextMap()
			assert.Equal(t, tt.wantCode, fields["status"])
			assert.Equal(t, "trace-xyz", fields["trace_id"])
		})
	}
}
