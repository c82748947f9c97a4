package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// CheckRateLimit reports whether the identifier is still under the ceiling
// for the live window. A missing key means a fresh window.
func (r *AuthRepo) CheckRateLimit(ctx context.Context, identifier string, limit int) (bool, error) {
	val, err := r.redisClient.Get(ctx, identifier)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return false, fmt.Errorf("failed to parse rate limit counter: %w", err)
	}

	return count < limit, nil
}

// IncrementRateLimit bumps the window counter. INCR creates the key
// atomically on first use, at which point the window TTL is attached; two
// concurrent first requests cannot double-create the window.
func (r *AuthRepo) IncrementRateLimit(ctx context.Context, identifier string, window time.Duration) error {
	count, err := r.redisClient.Incr(ctx, identifier)
	if err != nil {
		return fmt.Errorf("failed to increment rate limit: %w", err)
	}

	if count == 1 {
		if err := r.redisClient.Expire(ctx, identifier, window); err != nil {
			return fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return nil
}
