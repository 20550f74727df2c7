// Package server wires the PlayAPI HTTP server together.
//
// This package orchestrates all components:
//   - HTTP routing with Gin, API routes mounted under the configured base path
//   - Middleware stack (recovery, tracing, access log, metrics, CORS, rate limiting)
//   - The store client with its circuit breaker and metrics
//   - Optional gzip compression of responses
//
// Server Lifecycle:
//  1. Validate configuration
//  2. Initialize logger and metrics registry
//  3. Create the store client
//  4. Setup HTTP routes and middleware
//  5. Serve until the context is cancelled
//  6. Graceful shutdown
//
// Example Usage:
//
//	cfg, err := config.Load()
//	srv, err := server.NewServer(cfg)
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
