package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/counterpick-bot/internal/discord/v2/core"
)

// RateLimitConfig configures rate limiting behavior
type RateLimitConfig struct {
	// MaxRequests is the number of requests allowed per Window, also the
	// burst size
	MaxRequests int

	// Window is the time window for rate limiting
	Window time.Duration

	// KeyFunc extracts the rate limit key from context
	KeyFunc func(*core.InteractionContext) string

	// Message shown when rate limited
	Message string

	// Store for tracking rate limits (if nil, uses in-memory)
	Store RateLimitStore
}

// RateLimitStore decides whether a key may proceed
type RateLimitStore interface {
	Allow(key string) bool
	Reset(key string)
}

func defaultKeyFunc(ctx *core.InteractionContext) string {
	return ctx.UserID
}

// RateLimitMiddleware applies rate limiting
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	if config.KeyFunc == nil {
		config.KeyFunc = defaultKeyFunc
	}
	if config.Message == "" {
		config.Message = fmt.Sprintf("You're doing that too fast! Limit is %d requests per %v.", config.MaxRequests, config.Window)
	}
	if config.Store == nil {
		config.Store = NewLimiterStore(config.MaxRequests, config.Window, nil)
	}

	return func(next core.Handler) core.Handler {
		return core.HandlerFunc(func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			key := config.KeyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			if !config.Store.Allow(key) {
				return core.Respond(core.NewEphemeralResponse("⏱️ " + config.Message)), nil
			}

			return next.Handle(ctx)
		})
	}
}

// UserRateLimitMiddleware applies per-user rate limiting
func UserRateLimitMiddleware(maxRequests int, window time.Duration) core.Middleware {
	return RateLimitMiddleware(&RateLimitConfig{
		MaxRequests: maxRequests,
		Window:      window,
		KeyFunc:     defaultKeyFunc,
	})
}

// LimiterStore keeps one token bucket per key
type LimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewLimiterStore allows maxRequests per window per key, refilled smoothly.
// now may be nil to use the wall clock.
func NewLimiterStore(maxRequests int, window time.Duration, now func() time.Time) *LimiterStore {
	if maxRequests <= 0 {
		maxRequests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	if now == nil {
		now = time.Now
	}

	return &LimiterStore{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(maxRequests) / window.Seconds()),
		burst:    maxRequests,
		now:      now,
	}
}

// Allow consumes a token for key if one is available
func (s *LimiterStore) Allow(key string) bool {
	s.mu.Lock()
	l, ok := s.limiters[key]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.limiters[key] = l
	}
	s.mu.Unlock()

	return l.AllowN(s.now(), 1)
}

// Reset forgets key's history
func (s *LimiterStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.limiters, key)
}

// Prune drops limiters that have refilled completely; they behave the same
// as fresh ones
func (s *LimiterStore) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for key, l := range s.limiters {
		if l.TokensAt(now) >= float64(s.burst) {
			delete(s.limiters, key)
			removed++
		}
	}
	return removed
}

// Len reports how many keys are tracked
func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.limiters)
}

// PruneEvery runs Prune on an interval until ctx is done
func (s *LimiterStore) PruneEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune()
		}
	}
}
