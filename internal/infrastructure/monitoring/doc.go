/*
Package monitoring provides Prometheus metrics for the API and its store client.

# Features

- HTTP request metrics per route template (count, latency, response size)
- Upstream store call metrics per operation (count, latency, errors)
- Circuit breaker state gauge
- Uptime

Collectors are registered on an injected registry, so tests and multiple
servers in one process do not collide on the global one.

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", monitoring.Handler(reg))

	timer := monitoring.NewTimer(metrics, "app")
	// ... call the store ...
	timer.Stop("200")
*/
package monitoring
