package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimiterConfig holds the configuration for rate limiting
type RateLimiterConfig struct {
	MaxRequests   int           // Maximum number of requests allowed
	Window        time.Duration // Time window for rate limiting
	BlockDuration time.Duration // Duration to block the IP after exceeding limits
	Store         RateStore     // Counter storage; defaults to an in-memory store
	Log           logger.Logger
}

// RateStore counts requests per key inside a fixed window.
type RateStore interface {
	// Hit records one request and reports whether it is within budget.
	Hit(ctx context.Context, key string, cfg RateLimiterConfig) (bool, error)
}

// RateLimiterMiddleware returns a middleware that limits the number of
// requests per IP. Store failures let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	if config.Store == nil {
		config.Store = NewMemoryRateStore()
	}
	if config.Log == nil {
		config.Log = logger.Nop()
	}
	if config.BlockDuration <= 0 {
		config.BlockDuration = config.Window
	}
	log := config.Log.WithComponent("rate_limiter")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.MaxRequests <= 0 {
				return next(c)
			}

			ip := c.RealIP()
			ctx := c.Request().Context()

			allowed, err := config.Store.Hit(ctx, ip, config)
			if err != nil {
				log.WithContext(ctx).Warn("Rate limit check failed", logger.RemoteIP(ip), logger.Err(err))
				return next(c)
			}
			if !allowed {
				return apperrors.NewRateLimited("Too many requests from this IP, please try again later.")
			}
			return next(c)
		}
	}
}

type rateEntry struct {
	count        int
	firstRequest time.Time
	blockedUntil time.Time
}

// MemoryRateStore keeps counters in process memory. Each replica counts
// separately.
type MemoryRateStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	now     func() time.Time
}

func NewMemoryRateStore() *MemoryRateStore {
	return &MemoryRateStore{entries: make(map[string]*rateEntry), now: time.Now}
}

func (s *MemoryRateStore) Hit(_ context.Context, key string, cfg RateLimiterConfig) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok {
		s.entries[key] = &rateEntry{count: 1, firstRequest: now}
		s.sweep(now, cfg)
		return true, nil
	}

	// Check if IP is currently blocked
	if e.blockedUntil.After(now) {
		return false, nil
	}

	// Reset the window
	if now.Sub(e.firstRequest) > cfg.Window {
		*e = rateEntry{count: 1, firstRequest: now}
		return true, nil
	}

	if e.count >= cfg.MaxRequests {
		e.blockedUntil = now.Add(cfg.BlockDuration)
		return false, nil
	}
	e.count++
	return true, nil
}

// sweep drops entries whose window and block have both lapsed.
func (s *MemoryRateStore) sweep(now time.Time, cfg RateLimiterConfig) {
	for k, e := range s.entries {
		if now.Sub(e.firstRequest) > cfg.Window && !e.blockedUntil.After(now) {
			delete(s.entries, k)
		}
	}
}

const (
	rateCountPrefix = "ratelimit:count:"
	rateBlockPrefix = "ratelimit:block:"
)

type rateRedisCommands interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisRateStore shares counters across replicas using expiring keys.
type RedisRateStore struct {
	client rateRedisCommands
}

func NewRedisRateStore(client *redis.Client) *RedisRateStore {
	return &RedisRateStore{client: client}
}

func (s *RedisRateStore) Hit(ctx context.Context, key string, cfg RateLimiterConfig) (bool, error) {
	blocked, err := s.client.Exists(ctx, rateBlockPrefix+key).Result()
	if err != nil {
		return false, err
	}
	if blocked > 0 {
		return false, nil
	}

	// The counter is created with its window TTL before the first INCR, so a
	// failure between the two calls never leaves a key without expiry.
	if err := s.client.SetNX(ctx, rateCountPrefix+key, 0, cfg.Window).Err(); err != nil {
		return false, err
	}
	n, err := s.client.Incr(ctx, rateCountPrefix+key).Result()
	if err != nil {
		return false, err
	}
	if n > int64(cfg.MaxRequests) {
		if err := s.client.Set(ctx, rateBlockPrefix+key, 1, cfg.BlockDuration).Err(); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
