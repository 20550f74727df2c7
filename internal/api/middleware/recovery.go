package middleware

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/playapi/internal/infrastructure/logging"
	"github.com/GriffinCanCode/playapi/internal/infrastructure/tracing"
)

// InternalErrorMessage is the body message of a recovered panic.
const InternalErrorMessage = "Internal server error"

// Recovery turns handler panics into a logged 500 response.
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("trace_id", string(tracing.FromContext(c.Request.Context()))),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": InternalErrorMessage})
	})
}
