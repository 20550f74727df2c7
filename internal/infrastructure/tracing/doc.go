// Package tracing assigns request-scoped trace ids.
//
// Each inbound request gets a TraceID (a prefixed ULID, see shared/id), or
// keeps the one sent in X-Trace-ID. The id is echoed in the response header,
// stored in the request context for the store client, and attached to access
// logs.
//
// Example Usage:
//
//	router.Use(tracing.HTTPMiddleware())
//	...
//	logger.Debug("fetching", zap.String("trace_id", string(tracing.FromContext(ctx))))
package tracing
