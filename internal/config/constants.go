package config

import "time"

// Guard timing floor and defaults
const (
	MinGuardPollIntervalMS = 100
	DefaultGuardPoll       = 1500 * time.Millisecond
	DefaultExpiryMargin    = 30 * time.Second
)

// Mock API server timeouts
const (
	ServerReadTimeout     = 15 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Mock API pagination defaults
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)
