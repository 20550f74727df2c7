// Package logging provides structured logging using uber/zap.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing, tagged service=playapi
//   - Development: Colored console output for human readability
//
// Middleware adds a gin access log carrying the request's trace id.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.ForContext(ctx).Error("Store request failed", zap.Error(err))
package logging
