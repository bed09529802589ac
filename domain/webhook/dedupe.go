package webhook

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultDedupeTTL covers the payment provider's redelivery window.
const DefaultDedupeTTL = 72 * time.Hour

const dedupeKeyPrefix = "webhook:event:"

// Deduper claims event ids so a redelivered event is processed once.
type Deduper interface {
	// Claim returns false when the id was already claimed.
	Claim(ctx context.Context, eventID string) (bool, error)
	// Release drops a claim so a later delivery is processed again.
	Release(ctx context.Context, eventID string) error
}

type redisCommands interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisDeduper stores claims as expiring Redis keys.
type RedisDeduper struct {
	client redisCommands
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	if ttl <= 0 {
		ttl = DefaultDedupeTTL
	}
	return &RedisDeduper{client: client, ttl: ttl}
}

func (d *RedisDeduper) Claim(ctx context.Context, eventID string) (bool, error) {
	return d.client.SetNX(ctx, dedupeKeyPrefix+eventID, time.Now().Unix(), d.ttl).Result()
}

func (d *RedisDeduper) Release(ctx context.Context, eventID string) error {
	return d.client.Del(ctx, dedupeKeyPrefix+eventID).Err()
}
