package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-peerrank-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const generationKey = "score:generation"

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 10 * time.Minute

// redisScoreCache keys entries by rule version, cache generation, day, kind and
// user. Invalidate bumps the generation so every older entry becomes
// unreachable and expires on its own TTL.
type redisScoreCache struct {
	client      *redis.Client
	ruleVersion string
	ttl         time.Duration
}

func NewRedisScoreCache(client *redis.Client, ruleVersion string, ttl time.Duration) domain.ScoreCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisScoreCache{
		client:      client,
		ruleVersion: ruleVersion,
		ttl:         ttl,
	}
}

func (c *redisScoreCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("score cache generation: %w", err)
	}
	return gen, nil
}

func (c *redisScoreCache) Get(ctx context.Context, key domain.ScoreKey, dst any) (bool, error) {
	k := c.key(key)
	raw, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("score cache get: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("score cache decode %s: %w", k, err)
	}
	return true, nil
}

// Set writes under key.Generation as given. It never re-reads the counter.
func (c *redisScoreCache) Set(ctx context.Context, key domain.ScoreKey, value any) error {
	k := c.key(key)
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("score cache encode %s: %w", k, err)
	}
	if err := c.client.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("score cache set: %w", err)
	}
	return nil
}

func (c *redisScoreCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return fmt.Errorf("score cache invalidate: %w", err)
	}
	return nil
}

func (c *redisScoreCache) key(key domain.ScoreKey) string {
	return fmt.Sprintf("score:v%s:g%d:%s:%s:%d", c.ruleVersion, key.Generation, key.Day, key.Kind, key.UserID)
}

type noopScoreCache struct{}

// NewNoopScoreCache returns a cache that never hits, used when Redis is not configured.
func NewNoopScoreCache() domain.ScoreCache {
	return noopScoreCache{}
}

func (noopScoreCache) Generation(context.Context) (int64, error) { return 0, nil }
func (noopScoreCache) Get(context.Context, domain.ScoreKey, any) (bool, error) { return false, nil }
func (noopScoreCache) Set(context.Context, domain.ScoreKey, any) error { return nil }
func (noopScoreCache) Invalidate(context.Context) error { return nil }
