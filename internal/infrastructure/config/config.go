package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Store     StoreConfig     `yaml:"store" toml:"store"`
	Logging   LogConfig       `yaml:"logging" toml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit" toml:"rate_limit"`
	Metrics   MetricsConfig   `yaml:"metrics" toml:"metrics"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port     string `envconfig:"PORT" yaml:"port" toml:"port"`
	Host     string `envconfig:"HOST" yaml:"host" toml:"host"`
	BasePath string `envconfig:"BASE_PATH" yaml:"base_path" toml:"base_path"`
	Compress bool   `envconfig:"COMPRESS" yaml:"compress" toml:"compress"`
}

// StoreConfig holds the upstream store client configuration.
type StoreConfig struct {
	BaseURL           string   `envconfig:"STORE_BASE_URL" yaml:"base_url" toml:"base_url"`
	Lang              string   `envconfig:"STORE_LANG" yaml:"lang" toml:"lang"`
	Country           string   `envconfig:"STORE_COUNTRY" yaml:"country" toml:"country"`
	Timeout           Duration `envconfig:"STORE_TIMEOUT" yaml:"timeout" toml:"timeout"`
	Retries           int      `envconfig:"STORE_RETRIES" yaml:"retries" toml:"retries"`
	RequestsPerSecond float64  `envconfig:"STORE_RPS" yaml:"requests_per_second" toml:"requests_per_second"`
	UserAgent         string   `envconfig:"STORE_USER_AGENT" yaml:"user_agent" toml:"user_agent"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" yaml:"level" toml:"level"`
	Development bool   `envconfig:"LOG_DEV" yaml:"development" toml:"development"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" yaml:"requests_per_second" toml:"requests_per_second"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" yaml:"burst" toml:"burst"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" yaml:"enabled" toml:"enabled"`
	// Global* cap all clients together; zero disables the global bucket.
	GlobalRequestsPerSecond int `envconfig:"RATE_LIMIT_GLOBAL_RPS" yaml:"global_requests_per_second" toml:"global_requests_per_second"`
	GlobalBurst             int `envconfig:"RATE_LIMIT_GLOBAL_BURST" yaml:"global_burst" toml:"global_burst"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" yaml:"enabled" toml:"enabled"`
}

// FileEnv names the environment variable pointing at an optional config file.
const FileEnv = "CONFIG_FILE"

// Load builds configuration from defaults, the file named by CONFIG_FILE
// (if any) and environment variables, in that order.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(FileEnv))
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file layer.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// No envconfig defaults: unset variables leave the earlier layers intact.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8000",
			Host:     "0.0.0.0",
			BasePath: "/api",
			Compress: true,
		},
		Store: StoreConfig{
			BaseURL:           "https://play.google.com",
			Lang:              "en",
			Country:           "us",
			Timeout:           Duration(30 * time.Second),
			Retries:           2,
			RequestsPerSecond: 0,
			UserAgent:         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
			Enabled:           true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	}
	if !strings.HasPrefix(c.Server.BasePath, "/") {
		errs = append(errs, fmt.Errorf("base path %q must start with /", c.Server.BasePath))
	}
	if u, err := url.Parse(c.Store.BaseURL); err != nil || !u.IsAbs() {
		errs = append(errs, fmt.Errorf("store base url %q must be absolute", c.Store.BaseURL))
	}
	if c.Store.Timeout <= 0 {
		errs = append(errs, errors.New("store timeout must be positive"))
	}
	if c.Store.Retries < 0 {
		errs = append(errs, errors.New("store retries cannot be negative"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rate limit rps and burst must be positive when enabled"))
	}
	if c.RateLimit.GlobalRequestsPerSecond < 0 {
		errs = append(errs, errors.New("global rate limit rps cannot be negative"))
	}
	if c.RateLimit.GlobalRequestsPerSecond > 0 && c.RateLimit.GlobalBurst <= 0 {
		errs = append(errs, errors.New("global rate limit burst must be positive when global rps is set"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}
