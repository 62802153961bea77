// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// RulesetPath points at an optional YAML file overriding the built-in
	// analysis rule tables (buzzwords, trap terms, term corrections).
	RulesetPath string `env:"RULESET_PATH"`

	// DefaultPhoneRegion is the region used to parse phone numbers that carry
	// no country code.
	DefaultPhoneRegion string `env:"DEFAULT_PHONE_REGION" envDefault:"US"`

	// External lookups (GitHub users API, Wayback Machine availability API).
	LookupEnabled     bool          `env:"LOOKUP_ENABLED" envDefault:"true"`
	GitHubAPIBaseURL  string        `env:"GITHUB_API_BASE_URL" envDefault:"https://api.github.com"`
	ArchiveAPIBaseURL string        `env:"ARCHIVE_API_BASE_URL" envDefault:"https://archive.org"`
	LookupTimeout     time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"10s"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"candidate-verification"`

	MaxUploadMB           int64         `env:"MAX_UPLOAD_MB" envDefault:"10"`
	MaxBatchFiles         int           `env:"MAX_BATCH_FILES" envDefault:"100"`
	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"30"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// MaxUploadBytes returns the upload cap in bytes.
func (c Config) MaxUploadBytes() int64 { return c.MaxUploadMB * 1024 * 1024 }
