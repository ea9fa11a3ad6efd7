package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Profile is the authenticated user's identity as the client needs it.
type Profile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Options configure the store's persistence policy.
type Options struct {
	// PersistToken globally allows or forbids writing the token to storage.
	// The profile is always persisted; the token only when this is true.
	PersistToken bool
	// MaxTokenTTL is the policy ceiling on a stored token's remaining
	// lifetime. Zero disables the ceiling.
	MaxTokenTTL time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Store holds the canonical in-memory session and keeps it synchronized with
// the storage tiers. All three fields (token, user, remember) transition
// atomically; no caller can observe a partial update.
type Store struct {
	mu       sync.RWMutex
	token    string
	user     *Profile
	remember bool

	durable Tier
	scoped  Tier
	persist bool
	maxTTL  time.Duration
	now     func() time.Time
}

func NewStore(durable, scoped Tier, opts Options) *Store {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Store{
		durable: durable,
		scoped:  scoped,
		persist: opts.PersistToken,
		maxTTL:  opts.MaxTokenTTL,
		now:     now,
	}
}

// Token returns the in-memory access token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the in-memory profile, or nil.
func (s *Store) User() *Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *Store) Remember() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remember
}

// PersistsToken reports whether the store writes tokens to storage at all.
// When false, an empty storage read is policy, not evidence of logout.
func (s *Store) PersistsToken() bool {
	return s.persist
}

// Login sets token, profile and remember in one transition and persists both
// to the tier selected by remember, removing any stale copy from the other
// tier.
func (s *Store) Login(ctx context.Context, token string, user Profile, remember bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user
	s.remember = remember

	if err := s.persistProfileLocked(ctx); err != nil {
		return err
	}
	return s.persistTokenLocked(ctx)
}

// SetAccessToken updates only the token (rotation). An empty token purges
// storage in both tiers.
func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if token == "" {
		return s.purgeKeyLocked(ctx, KeyAccessToken)
	}
	return s.persistTokenLocked(ctx)
}

// SetProfile updates the profile and, when remember is non-nil, the tier
// selection. A held token is re-persisted under the new tier so token and
// profile never live in different tiers.
func (s *Store) SetProfile(ctx context.Context, user Profile, remember *bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	if remember != nil {
		s.remember = *remember
	}

	if err := s.persistProfileLocked(ctx); err != nil {
		return err
	}
	if s.token != "" {
		return s.persistTokenLocked(ctx)
	}
	return nil
}

// Logout clears the in-memory session and purges both keys from both tiers.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	s.remember = false

	if err := s.purgeKeyLocked(ctx, KeyProfile); err != nil {
		log.Warn().Err(err).Msg("session: failed to purge profile on logout")
	}
	if err := s.purgeKeyLocked(ctx, KeyAccessToken); err != nil {
		log.Warn().Err(err).Msg("session: failed to purge token on logout")
	}
}

// ReadToken reads the persisted token and applies the validity policy:
// undecodable, expired, or longer-lived than the TTL ceiling means the token
// is treated as absent and purged from storage. The read heals storage as a
// side effect.
func (s *Store) ReadToken(ctx context.Context) (string, error) {
	token, err := s.readStoredToken(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}

	if !validateToken(token, s.now(), s.maxTTL) {
		log.Info().Msg("session: stored token failed validity policy, purging")
		s.mu.Lock()
		purgeErr := s.purgeKeyLocked(ctx, KeyAccessToken)
		s.mu.Unlock()
		if purgeErr != nil {
			log.Warn().Err(purgeErr).Msg("session: failed to purge invalid token")
		}
		return "", nil
	}

	return token, nil
}

// Restore rehydrates the in-memory session from storage, preferring the
// durable tier. Used once at startup.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.ReadToken(ctx)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	raw, remember, err := s.readStoredProfile(ctx)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	var user Profile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.remember = remember
	s.mu.Unlock()
	return nil
}

// activeTierLocked returns the tier selected by remember and the one that
// must not hold a copy.
func (s *Store) activeTierLocked() (active, other Tier) {
	if s.remember {
		return s.durable, s.scoped
	}
	return s.scoped, s.durable
}

func (s *Store) persistProfileLocked(ctx context.Context) error {
	raw, err := json.Marshal(s.user)
	if err != nil {
		return err
	}

	active, other := s.activeTierLocked()
	if err := active.Set(ctx, KeyProfile, string(raw)); err != nil {
		return err
	}
	return other.Delete(ctx, KeyProfile)
}

func (s *Store) persistTokenLocked(ctx context.Context) error {
	if !s.persist {
		// Persistence globally disabled: make sure no stale token survives.
		return s.purgeKeyLocked(ctx, KeyAccessToken)
	}

	active, other := s.activeTierLocked()
	if err := active.Set(ctx, KeyAccessToken, s.token); err != nil {
		return err
	}
	return other.Delete(ctx, KeyAccessToken)
}

func (s *Store) purgeKeyLocked(ctx context.Context, key string) error {
	durableErr := s.durable.Delete(ctx, key)
	scopedErr := s.scoped.Delete(ctx, key)
	return errors.Join(durableErr, scopedErr)
}

func (s *Store) readStoredToken(ctx context.Context) (string, error) {
	for _, tier := range []Tier{s.durable, s.scoped} {
		token, err := tier.Get(ctx, KeyAccessToken)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}
	return "", nil
}

func (s *Store) readStoredProfile(ctx context.Context) (raw string, remember bool, err error) {
	value, err := s.durable.Get(ctx, KeyProfile)
	if err == nil {
		return value, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return "", false, err
	}

	value, err = s.scoped.Get(ctx, KeyProfile)
	if errors.Is(err, ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, false, nil
}
