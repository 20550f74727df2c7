// Package config loads service configuration.
//
// Values are layered, later layers winning:
//   - Default()
//   - an optional YAML or TOML file named by CONFIG_FILE
//   - environment variables (kelseyhightower/envconfig)
//
// Environment Variables:
//   - PORT, HOST, BASE_PATH, COMPRESS
//   - STORE_BASE_URL, STORE_LANG, STORE_COUNTRY, STORE_TIMEOUT,
//     STORE_RETRIES, STORE_RPS, STORE_USER_AGENT
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - METRICS_ENABLED
//
// Durations in TOML files are integer nanoseconds; YAML accepts "10s".
package config
