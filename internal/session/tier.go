// Package session owns the authenticated identity: the in-memory token and
// profile, and their synchronization to one of two storage tiers chosen by
// the user's "remember me" preference.
package session

import (
	"context"
	"errors"
)

// Storage keys. Each tier holds exactly these two.
const (
	KeyProfile     = "profile"
	KeyAccessToken = "accessToken"
)

// ErrNotFound is returned by Tier.Get when the key is absent.
var ErrNotFound = errors.New("session: key not found")

// Tier is one storage tier for session data. The durable tier survives
// restarts; the scoped tier lives only as long as the process.
type Tier interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Watcher is implemented by tiers that can push change notifications.
// Watched tiers let the guard react to external mutations (another process
// logging out) without waiting for its next poll.
type Watcher interface {
	Watch(ctx context.Context) <-chan string
}
