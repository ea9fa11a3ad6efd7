package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("MaxTokenTTL converts minutes to duration", func(t *testing.T) {
		cfg := &Config{MaxTokenTTLMinutes: 1440}
		assert.Equal(t, 24*time.Hour, cfg.MaxTokenTTL())
	})

	t.Run("GuardPollInterval converts milliseconds to duration", func(t *testing.T) {
		cfg := &Config{GuardPollIntervalMS: 1500}
		assert.Equal(t, 1500*time.Millisecond, cfg.GuardPollInterval())
	})

	t.Run("GuardExpiryMargin converts seconds to duration", func(t *testing.T) {
		cfg := &Config{GuardExpiryMarginSeconds: 30}
		assert.Equal(t, 30*time.Second, cfg.GuardExpiryMargin())
	})
}

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"API_BASE_URL":                os.Getenv("API_BASE_URL"),
		"PERSIST_TOKEN":               os.Getenv("PERSIST_TOKEN"),
		"MAX_TOKEN_TTL_MINUTES":       os.Getenv("MAX_TOKEN_TTL_MINUTES"),
		"GUARD_POLL_INTERVAL_MS":      os.Getenv("GUARD_POLL_INTERVAL_MS"),
		"GUARD_EXPIRY_MARGIN_SECONDS": os.Getenv("GUARD_EXPIRY_MARGIN_SECONDS"),
		"FALLBACK_ROUTE":              os.Getenv("FALLBACK_ROUTE"),
		"STATE_DIR":                   os.Getenv("STATE_DIR"),
		"REDIS_URL":                   os.Getenv("REDIS_URL"),
		"LOG_LEVEL":                   os.Getenv("LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	t.Run("loads config with defaults", func(t *testing.T) {
		for k := range originalEnv {
			os.Unsetenv(k)
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
		assert.True(t, cfg.PersistToken)
		assert.Equal(t, 1440, cfg.MaxTokenTTLMinutes)
		assert.Equal(t, 1500, cfg.GuardPollIntervalMS)
		assert.Equal(t, 30, cfg.GuardExpiryMarginSeconds)
		assert.Equal(t, "/login", cfg.FallbackRoute)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("loads custom values", func(t *testing.T) {
		os.Setenv("API_BASE_URL", "https://api.example.com/v1")
		os.Setenv("PERSIST_TOKEN", "false")
		os.Setenv("GUARD_POLL_INTERVAL_MS", "500")
		os.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://api.example.com/v1", cfg.APIBaseURL)
		assert.False(t, cfg.PersistToken)
		assert.Equal(t, 500, cfg.GuardPollIntervalMS)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			APIBaseURL:          "http://localhost:8080/api",
			MaxTokenTTLMinutes:  1440,
			GuardPollIntervalMS: 1500,
		}
	}

	t.Run("accepts valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects empty base url", func(t *testing.T) {
		cfg := valid()
		cfg.APIBaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects relative base url", func(t *testing.T) {
		cfg := valid()
		cfg.APIBaseURL = "/api"
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive ttl ceiling", func(t *testing.T) {
		cfg := valid()
		cfg.MaxTokenTTLMinutes = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects poll interval below floor", func(t *testing.T) {
		cfg := valid()
		cfg.GuardPollIntervalMS = MinGuardPollIntervalMS - 1
		assert.Error(t, cfg.Validate())
	})
}
