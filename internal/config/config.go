// Package config loads process configuration from the environment. A local
// .env file is honored when present, after which all values are read from
// VITO_-prefixed environment variables.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix shared by every environment variable read here.
const envPrefix = "vito"

// Config holds every tunable the process reads from the environment. Flags
// take precedence over these values where both exist (e.g. the RPC endpoint).
type Config struct {
	// RPCEndpoint is the JSON-RPC endpoint used when the --rpc flag is not
	// supplied. Empty means the built-in mainnet default.
	RPCEndpoint string `envconfig:"RPC_ENDPOINT"`

	// LogLevel is the minimum level emitted by the global logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// HTTPTimeout bounds each HTTP round trip to the RPC endpoint.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`

	// HTTPRetryMax is the number of transport-level retries for failed
	// HTTP round trips. Contract calls are never re-issued above this
	// layer.
	HTTPRetryMax int `envconfig:"HTTP_RETRY_MAX" default:"2"`

	// TelemetryEnabled turns on OTLP trace and metric export.
	TelemetryEnabled bool `envconfig:"TELEMETRY_ENABLED" default:"false"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; a missing file is not an
// error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
