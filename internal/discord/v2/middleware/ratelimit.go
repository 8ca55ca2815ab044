package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/herald-bot/internal/clock"
	"github.com/KirkDiggler/herald-bot/internal/discord/v2/core"
)

// RateLimitConfig configures rate limiting behavior
type RateLimitConfig struct {
	// MaxRequests is the maximum number of requests allowed per window
	MaxRequests int

	// Window is the time window for rate limiting
	Window time.Duration

	// KeyFunc extracts the rate limit key from context
	KeyFunc func(*core.InteractionContext) string

	// Message shown when rate limited
	Message string

	// Store for tracking rate limits (if nil, uses in-memory)
	Store RateLimitStore

	Logger *zap.Logger
}

// RateLimitStore tracks rate limit data
type RateLimitStore interface {
	// Increment increments the counter for a key and returns the new count
	Increment(ctx context.Context, key string, window time.Duration) (int, error)

	// Reset resets the counter for a key
	Reset(ctx context.Context, key string) error
}

// UserKey rate limits per user
func UserKey(ctx *core.InteractionContext) string {
	return ctx.UserID
}

// UserCommandKey rate limits per user and command
func UserCommandKey(ctx *core.InteractionContext) string {
	if ctx.IsCommand() {
		return fmt.Sprintf("%s:%s", ctx.UserID, ctx.GetCommandName())
	}
	return ctx.UserID
}

// RateLimitMiddleware applies fixed window rate limiting. Store failures let
// the request through.
func RateLimitMiddleware(config RateLimitConfig) core.Middleware {
	if config.KeyFunc == nil {
		config.KeyFunc = UserKey
	}
	if config.Message == "" {
		config.Message = fmt.Sprintf("You're doing that too fast! Please wait %v before trying again.", config.Window)
	}
	if config.Store == nil {
		config.Store = NewMemoryRateLimitStore(nil)
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	logger := config.Logger.Named("ratelimit")

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			key := config.KeyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			count, err := config.Store.Increment(ctx.Context, key, config.Window)
			if err != nil {
				logger.Warn("rate limit store failed", zap.String("key", key), zap.Error(err))
				return next.Handle(ctx)
			}

			if count > config.MaxRequests {
				logger.Debug("rate limited", zap.String("key", key), zap.Int("count", count))
				return core.Respond(core.NewEphemeralResponse("⏱️ " + config.Message)), nil
			}

			return next.Handle(ctx)
		})
	}
}

// MemoryRateLimitStore is an in-memory rate limit store
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	buckets map[string]*bucket
}

type bucket struct {
	count   int
	resetAt time.Time
}

// NewMemoryRateLimitStore creates a new in-memory store
func NewMemoryRateLimitStore(clk clock.Clock) *MemoryRateLimitStore {
	if clk == nil {
		clk = clock.New()
	}

	return &MemoryRateLimitStore{
		clock:   clk,
		buckets: make(map[string]*bucket),
	}
}

// Increment increments the counter for a key. Expired buckets are swept on
// the way.
func (s *MemoryRateLimitStore) Increment(_ context.Context, key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for k, b := range s.buckets {
		if !now.Before(b.resetAt) {
			delete(s.buckets, k)
		}
	}

	b, exists := s.buckets[key]
	if !exists {
		b = &bucket{resetAt: now.Add(window)}
		s.buckets[key] = b
	}
	b.count++

	return b.count, nil
}

// Reset resets the counter for a key
func (s *MemoryRateLimitStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.buckets, key)
	return nil
}

// Len reports how many keys are tracked
func (s *MemoryRateLimitStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.buckets)
}
