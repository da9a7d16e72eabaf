// Package config loads the application configuration from environment
// variables. Every variable is prefixed with "CHAINFLOW_" (e.g.,
// CHAINFLOW_NODE_ENDPOINT).
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting for the chainflow services.
type Config struct {
	// Network is the label used to namespace checkpoints and logs.
	Network string `envconfig:"NETWORK" default:"cronos"`

	// NodeEndpoint is the JSON-RPC URL of the EVM node.
	NodeEndpoint string `envconfig:"NODE_ENDPOINT" required:"true"`

	// ExplorerEndpoint is the base URL of the Etherscan-compatible block
	// explorer API. Explorer-backed actions are disabled when empty.
	ExplorerEndpoint string `envconfig:"EXPLORER_ENDPOINT"`

	// ExplorerAPIKey is appended to every explorer request; may be empty.
	ExplorerAPIKey string `envconfig:"EXPLORER_API_KEY"`

	// RequestTimeout bounds a single node or explorer HTTP request.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`

	// PollInterval is the delay between trigger polling iterations.
	// Cronos produces blocks every ~6 seconds.
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"6s"`

	// Redis connection settings for trigger checkpoint persistence.
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// LogLevel is the minimum level emitted by the logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// TelemetryEnabled turns on OTLP log/metric/trace export.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("chainflow", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
