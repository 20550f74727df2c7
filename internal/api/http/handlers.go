package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/playapi/internal/domain/playstore"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/resilience"
)

// breakerReporter is implemented by scrapers guarded by a circuit breaker.
type breakerReporter interface {
	BreakerState() resilience.State
}

// Handlers contains all HTTP handlers
type Handlers struct {
	scraper  playstore.Scraper
	basePath string
	logger   *logging.Logger
	metrics  *monitoring.Metrics
}

// HandlerOption customizes a Handlers.
type HandlerOption func(*Handlers)

// WithMetrics reports uptime from metrics. Without it uptime counts from
// process start.
func WithMetrics(metrics *monitoring.Metrics) HandlerOption {
	return func(h *Handlers) { h.metrics = metrics }
}

// NewHandlers creates a new handler set. basePath is the prefix the routes
// are mounted under and is used to build links.
func NewHandlers(scraper playstore.Scraper, basePath string, logger *logging.Logger, opts ...HandlerOption) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	h := &Handlers{
		scraper:  scraper,
		basePath: basePath,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the API routes on r. Collection routes answer with and
// without a trailing slash since generated links use the slashed form.
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Index)

	r.GET("/apps", h.Apps)
	r.GET("/apps/", h.Apps)
	r.GET("/apps/:appId", h.App)
	r.GET("/apps/:appId/similar", h.Similar)
	r.GET("/apps/:appId/datasafety", h.DataSafety)
	r.GET("/apps/:appId/permissions", h.Permissions)
	r.GET("/apps/:appId/reviews", h.Reviews)

	r.GET("/developers", h.DeveloperIndex)
	r.GET("/developers/", h.DeveloperIndex)
	r.GET("/developers/:devId", h.Developer)

	r.GET("/categories", h.Categories)
	r.GET("/categories/", h.Categories)
}

func (h *Handlers) links(c *gin.Context) linker {
	return linker{c: c, basePath: h.basePath}
}

// Index lists the top-level resources
func (h *Handlers) Index(c *gin.Context) {
	l := h.links(c)
	c.JSON(http.StatusOK, gin.H{
		"apps":       l.url("apps"),
		"developers": l.url("developers"),
		"categories": l.url("categories"),
	})
}

// Health reports liveness and the state of the upstream store circuit.
func (h *Handlers) Health(c *gin.Context) {
	status := "healthy"
	store := "unknown"
	if br, ok := h.scraper.(breakerReporter); ok {
		state := br.BreakerState()
		store = state.String()
		if state == resilience.StateOpen {
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"uptime": h.metrics.UptimeDuration().Round(time.Second).String(),
		"store":  store,
	})
}
