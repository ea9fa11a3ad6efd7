package mockapi

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// rateLimiter keeps one token bucket per bearer. The mock is single-tenant
// in practice, so there is no eviction.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   int
}

func newRateLimiter(perMin int) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*rate.Limiter),
		perMin:   perMin,
	}
}

func (rl *rateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(rl.perMin)/60.0), rl.perMin)
		rl.limiters[key] = limiter
	}
	return limiter
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("Authorization")
		if !rl.limiterFor(key).Allow() {
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
