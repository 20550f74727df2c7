package tracing

import (
	"github.com/gin-gonic/gin"
)

// HTTPMiddleware creates Gin middleware that assigns every request a trace id.
// A well-formed inbound X-Trace-ID is reused so callers can correlate.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := Sanitize(c.GetHeader(Header))

		c.Request = c.Request.WithContext(WithTraceID(c.Request.Context(), traceID))
		c.Header(Header, string(traceID))

		c.Next()
	}
}
