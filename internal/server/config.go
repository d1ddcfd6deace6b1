package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration, loaded from the environment.
type Config struct {
	ListenAddr      string        `env:"STRATPLAN_LISTEN" envDefault:":8080"`
	AuditDBPath     string        `env:"STRATPLAN_AUDIT_DB"`
	MaxRequestBytes int64         `env:"STRATPLAN_MAX_REQUEST_BYTES" envDefault:"1048576"`
	ShutdownGrace   time.Duration `env:"STRATPLAN_SHUTDOWN_GRACE" envDefault:"5s"`
}

// LoadConfig parses the STRATPLAN_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
