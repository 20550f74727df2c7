// Package main is the entry point for the PlayAPI server.
//
// PlayAPI exposes Google Play store data (app details, search, lists,
// developers, reviews, permissions and data safety) as a JSON REST API
// with hypermedia links between resources.
//
// Configuration:
//   - Defaults
//   - Optional YAML or TOML file (--config or CONFIG_FILE)
//   - Environment variables (12-factor)
//   - CLI flags (override everything else)
//
// Usage:
//
//	# Production mode
//	./server --port 3000 --base-path /api
//
//	# Development mode (colored logs, debug level)
//	./server --log-dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
