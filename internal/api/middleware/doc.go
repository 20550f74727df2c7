// Package middleware provides the HTTP middleware shared by the API routes.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing for the read-only API
//   - RateLimit: Per-IP token bucket rate limiting, idle clients are forgotten
//   - Recovery: Panic recovery with a JSON 500 response and a zap log line
//
// Rejections use the same {"message": ...} body as the API error handler.
//
// Example Usage:
//
//	router.Use(middleware.Recovery(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
package middleware
