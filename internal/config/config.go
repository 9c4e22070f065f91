package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"traffic-exchange/internal/config/configs"
)

// Store drivers selectable with STORE_DRIVER.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to traces and logged on startup.
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects where ledger state lives: "postgres" or
	// "memory". The memory driver keeps nothing across restarts.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Auth      configs.Auth      `envPrefix:"AUTH_"`
	RateLimit configs.RateLimit `envPrefix:"RATE_LIMIT_"`
	Fraud     configs.Fraud     `envPrefix:"FRAUD_"`
	Ledger    configs.Ledger    `envPrefix:"LEDGER_"`
	Otel      configs.Otel      `envPrefix:"OTEL_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case StorePostgres, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate limit must allow at least one request per window")
	}
	if c.Fraud.Window <= 0 || c.Fraud.RowLimit <= 0 {
		return fmt.Errorf("fraud window and row limit must be positive")
	}
	if c.Ledger.SignupBonus < 0 {
		return fmt.Errorf("LEDGER_SIGNUP_BONUS must not be negative")
	}
	return nil
}
