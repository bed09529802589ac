package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLimitedServer(cfg RateLimiterConfig) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Nop())
	e.POST("/api/contact", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, RateLimiterMiddleware(cfg))
	return e
}

func post(e *echo.Echo, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_Memory(t *testing.T) {
	store := NewMemoryRateStore()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	e := newLimitedServer(RateLimiterConfig{
		MaxRequests:   2,
		Window:        time.Minute,
		BlockDuration: 5 * time.Minute,
		Store:         store,
	})

	assert.Equal(t, http.StatusNoContent, post(e, "10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, post(e, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post(e, "10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, post(e, "10.0.0.2"), "other IPs are counted separately")

	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusTooManyRequests, post(e, "10.0.0.1"), "block outlasts the window")

	now = now.Add(4 * time.Minute)
	assert.Equal(t, http.StatusNoContent, post(e, "10.0.0.1"))
}

func TestRateLimiter_DisabledWhenZero(t *testing.T) {
	e := newLimitedServer(RateLimiterConfig{Window: time.Minute})
	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusNoContent, post(e, "10.0.0.1"))
	}
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, RateLimiterConfig) (bool, error) {
	return false, errors.New("redis down")
}

func TestRateLimiter_StoreErrorLetsRequestThrough(t *testing.T) {
	e := newLimitedServer(RateLimiterConfig{MaxRequests: 1, Window: time.Minute, Store: failingStore{}})
	assert.Equal(t, http.StatusNoContent, post(e, "10.0.0.1"))
}

type fakeRateRedis struct {
	counts  map[string]int64
	blocked map[string]time.Duration
	expires map[string]time.Duration
	incrErr error
}

func newFakeRateRedis() *fakeRateRedis {
	return &fakeRateRedis{
		counts:  map[string]int64{},
		blocked: map[string]time.Duration{},
		expires: map[string]time.Duration{},
	}
}

func (f *fakeRateRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.blocked[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRateRedis) SetNX(_ context.Context, key string, _ interface{}, d time.Duration) *redis.BoolCmd {
	if _, ok := f.counts[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.counts[key] = 0
	f.expires[key] = d
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRateRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	if f.incrErr != nil {
		return redis.NewIntResult(0, f.incrErr)
	}
	f.counts[key]++
	return redis.NewIntResult(f.counts[key], nil)
}

func (f *fakeRateRedis) Set(_ context.Context, key string, _ interface{}, d time.Duration) *redis.StatusCmd {
	f.blocked[key] = d
	return redis.NewStatusResult("OK", nil)
}

func TestRedisRateStore_Hit(t *testing.T) {
	fake := newFakeRateRedis()
	store := &RedisRateStore{client: fake}
	cfg := RateLimiterConfig{MaxRequests: 2, Window: time.Minute, BlockDuration: 10 * time.Minute}
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := store.Hit(ctx, "1.2.3.4", cfg)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, time.Minute, fake.expires["ratelimit:count:1.2.3.4"])

	ok, err := store.Hit(ctx, "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 10*time.Minute, fake.blocked["ratelimit:block:1.2.3.4"])

	ok, err = store.Hit(ctx, "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(3), fake.counts["ratelimit:count:1.2.3.4"], "blocked requests are not counted")
}

func TestRedisRateStore_CounterExpiresEvenWhenIncrFails(t *testing.T) {
	fake := newFakeRateRedis()
	fake.incrErr = errors.New("connection reset")
	store := &RedisRateStore{client: fake}
	cfg := RateLimiterConfig{MaxRequests: 2, Window: time.Minute, BlockDuration: 10 * time.Minute}

	_, err := store.Hit(context.Background(), "1.2.3.4", cfg)
	require.Error(t, err)
	assert.Equal(t, time.Minute, fake.expires["ratelimit:count:1.2.3.4"])

	// Later hits keep the original window instead of resetting it.
	fake.incrErr = nil
	fake.expires["ratelimit:count:1.2.3.4"] = 30 * time.Second
	ok, err := store.Hit(context.Background(), "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, fake.expires["ratelimit:count:1.2.3.4"])
}
