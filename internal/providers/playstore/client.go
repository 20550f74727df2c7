package playstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/resilience"
)

// BreakerName labels the store circuit breaker in logs and metrics.
const BreakerName = "playstore"

// ClientConfig configures the store HTTP client.
type ClientConfig struct {
	BaseURL           string
	Timeout           time.Duration
	Retries           int
	RequestsPerSecond float64 // 0 = unlimited
	UserAgent         string
}

// StatusError is returned for non-2xx store responses other than 404.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store responded with status %d", e.Code)
}

// Client wraps resty with rate limiting and a circuit breaker.
type Client struct {
	resty   *resty.Client
	baseURL string
	limiter *rate.Limiter
	breaker *resilience.Breaker
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewClient creates the store client. metrics may be nil.
func NewClient(cfg ClientConfig, logger *logging.Logger, metrics *monitoring.Metrics) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("playstore")

	// Pooled transport from retryablehttp; retries themselves are resty's.
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("User-Agent", cfg.UserAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil || r == nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
		})
	restyClient.SetTransport(retryClient.HTTPClient.Transport)

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	breaker := resilience.New(BreakerName, resilience.Settings{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 10 ||
				(counts.Requests >= 20 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.7)
		},
		IsSuccessful: func(err error) bool {
			// Missing listings and caller cancellations say nothing about store health.
			return err == nil ||
				errors.Is(err, playstore.ErrNotFound) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.SetBreakerState(name, int(to))
		},
	})
	metrics.SetBreakerState(BreakerName, int(resilience.StateClosed))

	return &Client{
		resty:   restyClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: limiter,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// BreakerState returns the current circuit breaker state
func (c *Client) BreakerState() resilience.State {
	return c.breaker.State()
}

// URL returns the absolute store URL for path and query.
func (c *Client) URL(path string, query url.Values) string {
	if len(query) == 0 {
		return c.baseURL + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

// get fetches path and returns the response body.
func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		return req.SetQueryParamsFromValues(query).Get(path)
	})
}

// postForm posts a url-encoded form and returns the response body.
func (c *Client) postForm(ctx context.Context, op, path string, query, form url.Values) ([]byte, error) {
	return c.do(ctx, op, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParamsFromValues(query).
			SetFormDataFromValues(form).
			Post(path)
	})
}

func (c *Client) do(ctx context.Context, op string, send func(*resty.Request) (*resty.Response, error)) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit error: %w", err)
	}

	timer := monitoring.NewTimer(c.metrics, op)

	body, err := resilience.Execute(c.breaker, func() ([]byte, error) {
		resp, err := send(c.resty.R().SetContext(ctx))
		if err != nil {
			return nil, err
		}
		return checkResponse(resp)
	})

	status := statusLabel(err)
	duration := timer.Stop(status)
	c.logger.ForContext(ctx).Debug("Store request",
		zap.String("operation", op),
		zap.String("status", status),
		zap.Duration("duration", duration),
	)

	if err != nil {
		c.metrics.RecordStoreError(op, status)
		if errors.Is(err, resilience.ErrCircuitOpen) || errors.Is(err, resilience.ErrTooManyRequests) {
			return nil, fmt.Errorf("store unavailable: %w", err)
		}
		return nil, err
	}
	return body, nil
}

func checkResponse(resp *resty.Response) ([]byte, error) {
	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return nil, playstore.ErrNotFound
	case code < 200 || code >= 300:
		return nil, &StatusError{Code: code}
	}
	return resp.Body(), nil
}

func statusLabel(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, playstore.ErrNotFound):
		return "not_found"
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case errors.As(err, &statusErr):
		return strconv.Itoa(statusErr.Code)
	default:
		return "transport"
	}
}
