// Package guard watches the session for inconsistency across time and
// across processes: a token gone from storage, an expiry about to lapse, or
// a logout performed elsewhere all force a full local teardown.
package guard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/courtbook/booking-client-go/internal/config"
	"github.com/courtbook/booking-client-go/internal/session"
)

type Options struct {
	// PollInterval is the tamper-detection fallback cadence. Event-driven
	// detection (Changes) is preferred; polling catches mutations that fire
	// no event.
	PollInterval time.Duration
	// ExpiryMargin is how long before the token's own exp the proactive
	// teardown fires.
	ExpiryMargin time.Duration
	// FallbackRoute is handed to OnTeardown.
	FallbackRoute string
	// Changes delivers storage change notifications from a watched tier.
	// Nil disables event-driven checks.
	Changes <-chan string
	// OnTeardown is invoked after the session is destroyed; the embedding
	// application navigates to the fallback route and rebuilds its world
	// from scratch.
	OnTeardown func(fallbackRoute string)
	// ResetCache discards all session-dependent cached state before
	// OnTeardown runs.
	ResetCache func()
}

type Guard struct {
	store *session.Store
	opts  Options

	checkMu sync.Mutex
	done    chan struct{}
	stopped sync.Once
}

func New(store *session.Store, opts Options) *Guard {
	if opts.PollInterval <= 0 {
		opts.PollInterval = config.DefaultGuardPoll
	}
	if opts.ExpiryMargin <= 0 {
		opts.ExpiryMargin = config.DefaultExpiryMargin
	}
	return &Guard{
		store: store,
		opts:  opts,
		done:  make(chan struct{}),
	}
}

func (g *Guard) Start() {
	go g.run()
	log.Info().
		Dur("pollInterval", g.opts.PollInterval).
		Dur("expiryMargin", g.opts.ExpiryMargin).
		Msg("guard started")
}

func (g *Guard) Stop() {
	g.stopped.Do(func() { close(g.done) })
	log.Info().Msg("guard stopped")
}

// CheckNow runs one consistency check immediately. Callers invoke it on
// navigation and on regaining focus; a check already in flight makes it a
// no-op.
func (g *Guard) CheckNow() {
	g.check(context.Background())
}

func (g *Guard) run() {
	ticker := time.NewTicker(g.opts.PollInterval)
	defer ticker.Stop()

	expiry := time.NewTimer(time.Hour)
	if !expiry.Stop() {
		<-expiry.C
	}
	defer expiry.Stop()

	g.check(context.Background())
	g.armExpiry(expiry)

	for {
		select {
		case <-g.done:
			return
		case <-ticker.C:
			g.check(context.Background())
			g.armExpiry(expiry)
		case _, ok := <-g.opts.Changes:
			if !ok {
				// Watched tier went away; polling still covers us.
				g.opts.Changes = nil
				continue
			}
			g.check(context.Background())
			g.armExpiry(expiry)
		case <-expiry.C:
			if g.store.Token() != "" {
				g.teardown(context.Background(), "token reached its expiry margin")
			}
		}
	}
}

// check verifies that the in-memory token is still backed by a valid stored
// token. Overlapping triggers collapse into one check per tick.
func (g *Guard) check(ctx context.Context) {
	if !g.checkMu.TryLock() {
		return
	}
	defer g.checkMu.Unlock()

	token := g.store.Token()
	if token == "" {
		return
	}

	if !g.store.PersistsToken() {
		// Tokens never reach storage under this policy, so there is no
		// stored copy to compare against. The expiry timer still applies.
		return
	}

	stored, err := g.store.ReadToken(ctx)
	if err != nil {
		// Storage I/O trouble is not evidence of logout; keep the session
		// and let the next tick retry.
		log.Warn().Err(err).Msg("guard: storage read failed")
		return
	}

	if stored == "" {
		g.teardown(ctx, "stored token missing or invalid")
	}
}

func (g *Guard) armExpiry(timer *time.Timer) {
	token := g.store.Token()
	if token == "" {
		return
	}

	exp, err := session.TokenExpiry(token)
	if err != nil {
		return
	}

	fireIn := time.Until(exp) - g.opts.ExpiryMargin
	if fireIn < 0 {
		fireIn = 0
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(fireIn)
}

func (g *Guard) teardown(ctx context.Context, reason string) {
	log.Warn().Str("reason", reason).Msg("guard: tearing down session")

	g.store.Logout(ctx)
	if g.opts.ResetCache != nil {
		g.opts.ResetCache()
	}
	if g.opts.OnTeardown != nil {
		g.opts.OnTeardown(g.opts.FallbackRoute)
	}
}
