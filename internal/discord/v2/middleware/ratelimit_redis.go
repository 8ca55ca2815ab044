package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

const rateLimitKeyPrefix = "herald:ratelimit:"

// RedisRateLimitStore shares rate limit windows across bot instances
type RedisRateLimitStore struct {
	client redis.UniversalClient
}

// NewRedisRateLimitStore creates a Redis backed store
func NewRedisRateLimitStore(client redis.UniversalClient) *RedisRateLimitStore {
	if client == nil {
		panic("redis client is required")
	}

	return &RedisRateLimitStore{client: client}
}

// Increment counts the request and starts the window on the first one
func (s *RedisRateLimitStore) Increment(ctx context.Context, key string, window time.Duration) (int, error) {
	redisKey := rateLimitKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, herr.WrapWithCode(err, herr.CodeUnavailable, "increment rate limit").
			WithMeta("key", key)
	}

	if count == 1 {
		if err := s.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return 0, herr.WrapWithCode(err, herr.CodeUnavailable, "set rate limit window").
				WithMeta("key", key)
		}
	}

	return int(count), nil
}

// Reset clears the counter for a key
func (s *RedisRateLimitStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, rateLimitKeyPrefix+key).Err(); err != nil {
		return herr.WrapWithCode(err, herr.CodeUnavailable, "reset rate limit").
			WithMeta("key", key)
	}
	return nil
}
