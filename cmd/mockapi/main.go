package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/config"
	"github.com/courtbook/booking-client-go/internal/mockapi"
)

type mockConfig struct {
	Port            int    `env:"MOCK_PORT" envDefault:"8080"`
	JWTSecret       string `env:"MOCK_JWT_SECRET" envDefault:"dev-only-secret"`
	TokenTTLMinutes int    `env:"MOCK_TOKEN_TTL_MINUTES" envDefault:"60"`
	RateLimitPerMin int    `env:"MOCK_RATE_LIMIT_PER_MIN" envDefault:"600"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	_ = godotenv.Load()

	var cfg mockConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config")
	}
	setLogLevel(cfg.LogLevel)

	api := mockapi.NewServer(mockapi.Options{
		JWTSecret:       cfg.JWTSecret,
		TokenTTL:        time.Duration(cfg.TokenTTLMinutes) * time.Minute,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     api.Handler(),
		ReadTimeout: config.ServerReadTimeout,
		IdleTimeout: config.ServerIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting mock API")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down mock API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ServerShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("mock API stopped")
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
