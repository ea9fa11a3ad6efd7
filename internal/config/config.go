package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog/log"
)

type Config struct {
	APIBaseURL               string `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	PersistToken             bool   `env:"PERSIST_TOKEN" envDefault:"true"`
	MaxTokenTTLMinutes       int    `env:"MAX_TOKEN_TTL_MINUTES" envDefault:"1440"`
	GuardPollIntervalMS      int    `env:"GUARD_POLL_INTERVAL_MS" envDefault:"1500"`
	GuardExpiryMarginSeconds int    `env:"GUARD_EXPIRY_MARGIN_SECONDS" envDefault:"30"`
	FallbackRoute            string `env:"FALLBACK_ROUTE" envDefault:"/login"`
	StateDir                 string `env:"STATE_DIR" envDefault:""`
	RedisURL                 string `env:"REDIS_URL" envDefault:""`
	LogLevel                 string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c *Config) MaxTokenTTL() time.Duration {
	return time.Duration(c.MaxTokenTTLMinutes) * time.Minute
}

func (c *Config) GuardPollInterval() time.Duration {
	return time.Duration(c.GuardPollIntervalMS) * time.Millisecond
}

func (c *Config) GuardExpiryMargin() time.Duration {
	return time.Duration(c.GuardExpiryMarginSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an absolute http(s) URL")
	}
	if c.MaxTokenTTLMinutes <= 0 {
		return fmt.Errorf("MAX_TOKEN_TTL_MINUTES must be positive")
	}
	if c.GuardPollIntervalMS < MinGuardPollIntervalMS {
		return fmt.Errorf("GUARD_POLL_INTERVAL_MS must be at least %d", MinGuardPollIntervalMS)
	}
	if c.PersistToken && c.StateDir == "" && c.RedisURL == "" {
		log.Warn().Msg("PERSIST_TOKEN is enabled but neither STATE_DIR nor REDIS_URL is set: sessions will not survive restarts")
	}
	return nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
