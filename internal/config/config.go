package config

import (
	"fmt"
	"net"

	"github.com/kelseyhightower/envconfig"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Host        string `envconfig:"HOST" default:"127.0.0.1"`
	Port        string `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Store settings
	StoreBackend       string `envconfig:"STORE_BACKEND" default:"memory"`
	DBConnectionString string `envconfig:"DATABASE_URL"`
	DBMaxConns         int32  `envconfig:"DB_MAX_CONNS" default:"5"`
	MigrateOnStart     bool   `envconfig:"MIGRATE_ON_START" default:"false"`

	HealthCheckResponse string `envconfig:"HEALTH_CHECK_RESPONSE" default:"I'm OK."`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks combinations envconfig tags cannot express
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DBConnectionString == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", BackendPostgres)
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q, want %q or %q", c.StoreBackend, BackendMemory, BackendPostgres)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns)
	}
	return nil
}

// Addr is the address the HTTP server listens on
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
