package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errNoExpiry = errors.New("session: token carries no exp claim")

// TokenExpiry decodes the exp claim from a JWT without verifying its
// signature. The client never validates signatures; it only needs the expiry
// for the persistence policy and the guard's forward timer.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errNoExpiry
	}
	return exp.Time, nil
}

// validateToken applies the read policy: the token must decode, must not be
// expired, and must not outlive the configured TTL ceiling. The ceiling is a
// deliberate client-side policy, independent of the token's own exp.
func validateToken(token string, now time.Time, maxTTL time.Duration) bool {
	exp, err := TokenExpiry(token)
	if err != nil {
		return false
	}
	if !now.Before(exp) {
		return false
	}
	if maxTTL > 0 && exp.Sub(now) > maxTTL {
		return false
	}
	return true
}
