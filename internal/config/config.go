package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/snowpeak/skistation/internal/logger"
)

// Config aggregates every tunable part of the service.
type Config struct {
	Addr      string `envconfig:"ADDR" default:":8080"`
	DBPath    string `envconfig:"DB_PATH" default:"skistation.db"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	PublicURL string `envconfig:"PUBLIC_URL" default:"http://localhost:8080"`

	// AdminToken guards destructive routes; empty disables the guard.
	AdminToken string `envconfig:"ADMIN_TOKEN"`

	ExpirySweepEnabled  bool          `envconfig:"EXPIRY_SWEEP_ENABLED" default:"true"`
	ExpirySweepInterval time.Duration `envconfig:"EXPIRY_SWEEP_INTERVAL" default:"1m"`
}

// Load reads an optional .env file, then the environment, and validates the result.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	var problems []string

	if strings.TrimSpace(cfg.DBPath) == "" {
		problems = append(problems, "DB_PATH is empty")
	}
	if cfg.ExpirySweepEnabled && cfg.ExpirySweepInterval <= 0 {
		problems = append(problems, "EXPIRY_SWEEP_INTERVAL must be positive")
	}
	if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of debug, info, warn, error", cfg.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
