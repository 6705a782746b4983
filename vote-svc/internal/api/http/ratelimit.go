package httpapi

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterResetInterval = 5 * time.Minute

// UserRateLimiter throttles requests per authenticated user. It is a guard
// against request floods, not part of the daily vote cap. The per-user map is
// dropped every limiterResetInterval so it only holds recently active users.
type UserRateLimiter struct {
	mu        sync.Mutex
	limiters  map[int]*rate.Limiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastReset time.Time
}

func NewUserRateLimiter(perSecond float64, burst int) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:  make(map[int]*rate.Limiter),
		limit:     rate.Limit(perSecond),
		burst:     burst,
		now:       time.Now,
		lastReset: time.Now(),
	}
}

func (l *UserRateLimiter) Allow(userID int) bool {
	l.mu.Lock()
	if now := l.now(); now.Sub(l.lastReset) >= limiterResetInterval {
		l.limiters = make(map[int]*rate.Limiter)
		l.lastReset = now
	}
	limiter, ok := l.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}

// Middleware must run after JWTAuth.
func (l *UserRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(UserIDFromContext(r.Context())) {
			writeError(w, http.StatusTooManyRequests, CategoryRateLimited, "too many requests, please try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
