// Package config loads process-wide settings from the environment once at
// startup. The resulting Config is never mutated afterwards.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aebonlee/blog-test-2/client"
)

// Config holds application configuration.
type Config struct {
	// Posts API
	APIBaseURL       string        `envconfig:"API_BASE_URL" default:"https://jsonplaceholder.typicode.com"`
	APITimeout       time.Duration `envconfig:"API_TIMEOUT" default:"10s"`
	RetryMaxAttempts int           `envconfig:"API_RETRY_MAX_ATTEMPTS" default:"1"`

	// Application identity
	AppName    string `envconfig:"APP_NAME" default:"Postboard"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Demo backend
	MockAPIAddr string `envconfig:"MOCK_API_ADDR" default:":8089"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges envconfig cannot express.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("invalid API_BASE_URL %q: %w", c.APIBaseURL, err)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be > 0, got %s", c.APITimeout)
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("API_RETRY_MAX_ATTEMPTS must be >= 1, got %d", c.RetryMaxAttempts)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT: %s", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// ClientConfig is the posts client configuration derived from c.
func (c *Config) ClientConfig() client.Config {
	return client.Config{BaseURL: c.APIBaseURL, Timeout: c.APITimeout}
}

// ClientOptions returns the options implied by c.
func (c *Config) ClientOptions() []client.Option {
	var opts []client.Option
	if c.RetryMaxAttempts > 1 {
		opts = append(opts, client.WithRetry(c.RetryMaxAttempts, 200*time.Millisecond, 2*time.Second))
	}
	return opts
}

// Init initializes logging and reports the loaded configuration.
func (c *Config) Init() {
	InitLogger(c.LogFormat)
	SetLogLevel(c.Level())

	log.Info().
		Str("app", c.AppName).
		Str("version", c.AppVersion).
		Str("api_base_url", c.APIBaseURL).
		Dur("api_timeout", c.APITimeout).
		Int("retry_max_attempts", c.RetryMaxAttempts).
		Str("log_level", c.Level().String()).
		Msg("Application configuration loaded")
}
