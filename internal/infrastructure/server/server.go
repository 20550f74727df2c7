package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/playapi/internal/api/http"
	"github.com/GriffinCanCode/playapi/internal/api/middleware"
	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/config"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/tracing"
	storeProvider "github.com/GriffinCanCode/playapi/internal/providers/playstore"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  http.Handler
	scraper  playstore.Scraper
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	registry *prometheus.Registry
}

// Option customizes a Server.
type Option func(*Server)

// WithScraper replaces the live store client.
func WithScraper(scraper playstore.Scraper) Option {
	return func(s *Server) { s.scraper = scraper }
}

// WithLogger replaces the logger built from configuration.
func WithLogger(logger *logging.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{config: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		logger, err := logging.New(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		s.logger = logger
	}

	s.logger.Info("Initializing PlayAPI server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("store", cfg.Store.BaseURL),
	)

	if cfg.Metrics.Enabled {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		s.metrics = monitoring.NewMetrics(s.registry)
		s.logger.Info("Performance monitoring initialized")
	}

	if s.scraper == nil {
		client := storeProvider.NewClient(storeProvider.ClientConfig{
			BaseURL:           cfg.Store.BaseURL,
			Timeout:           cfg.Store.Timeout.Std(),
			Retries:           cfg.Store.Retries,
			RequestsPerSecond: cfg.Store.RequestsPerSecond,
			UserAgent:         cfg.Store.UserAgent,
		}, s.logger, s.metrics)
		s.scraper = storeProvider.New(client, playstore.Locale{
			Lang:    cfg.Store.Lang,
			Country: cfg.Store.Country,
		}, s.logger)
	}

	s.router = s.buildRouter()
	s.handler = s.router
	if cfg.Server.Compress {
		s.handler = gzhttp.GzipHandler(s.router)
	}

	s.logger.Info("Server initialized successfully")
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	cfg := s.config
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	// Route on the escaped path so %2F inside a developer id stays in the
	// parameter; values are unescaped for handlers.
	router.UseRawPath = true
	router.UnescapePathValues = true

	// Add middleware
	router.Use(middleware.Recovery(s.logger))
	router.Use(tracing.HTTPMiddleware())
	router.Use(logging.Middleware(s.logger))
	if s.metrics != nil {
		router.Use(monitoring.Middleware(s.metrics))
	}
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		s.logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		if cfg.RateLimit.GlobalRequestsPerSecond > 0 {
			s.logger.Info("Global rate limit enabled",
				zap.Int("rps", cfg.RateLimit.GlobalRequestsPerSecond),
				zap.Int("burst", cfg.RateLimit.GlobalBurst),
			)
			router.Use(middleware.GlobalRateLimit(middleware.RateLimitConfig{
				RequestsPerSecond: cfg.RateLimit.GlobalRequestsPerSecond,
				Burst:             cfg.RateLimit.GlobalBurst,
			}))
		}
		limits := middleware.DefaultRateLimitConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(limits))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})

	handlers := api.NewHandlers(s.scraper, cfg.Server.BasePath, s.logger, api.WithMetrics(s.metrics))

	// Register routes
	router.GET("/health", handlers.Health)
	if s.registry != nil {
		router.GET("/metrics", monitoring.Handler(s.registry))
	}
	handlers.Register(router.Group(cfg.Server.BasePath, api.ErrorHandler()))

	return router
}

// Handler returns the root HTTP handler, compressed when configured.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger.Logger),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close flushes the logger.
func (s *Server) Close() error {
	_ = s.logger.Sync()
	return nil
}
