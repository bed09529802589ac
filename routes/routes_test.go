package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/domain/health"
	"github.com/Triaksa-Space/bootcamp-site/domain/pages"
	"github.com/Triaksa-Space/bootcamp-site/middleware"
	"github.com/Triaksa-Space/bootcamp-site/pkg/kv"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBackend struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (b *memBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return v, nil
}

func (b *memBackend) Set(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data[key] = value
	return nil
}

func (b *memBackend) Ping(context.Context) error { return nil }
func (b *memBackend) Name() string               { return "memory" }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	renderer, err := pages.NewRenderer()
	require.NoError(t, err)

	backend := &memBackend{data: map[string][]byte{}}
	store := content.NewStore(backend, content.DefaultKey, secret.NewGuard("letmein"), logger.Nop())

	e := NewServer(ServerOptions{Log: logger.Nop(), Renderer: renderer, CORSOrigins: []string{"https://camp.dev"}})
	RegisterRoutes(e, Handlers{
		Content: content.NewHandler(store),
		Pages:   pages.NewHandler(store),
		Health:  health.NewHandler("test", map[string]health.Pinger{"content_store": backend}),
		ContactLimit: middleware.RateLimiterConfig{
			MaxRequests: 5,
			Window:      time.Minute,
		},
	})
	return e
}

func do(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_ContentRoundTrip(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/content/update", `{"hero":{"title":"Ship it"}}`, map[string]string{
		echo.HeaderContentType: echo.MIMEApplicationJSON,
		secret.HeaderName:      "letmein",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/content", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp content.ContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ship it", resp.Content.Hero.Title)

	rec = do(e, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ship it")
}

func TestRoutes_RequestIDAndErrorShape(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/content/update", `{"hero":{}}`, map[string]string{
		secret.HeaderName: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(logger.RequestIDHeader))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, rec.Header().Get(logger.RequestIDHeader), body["request_id"])
}

func TestRoutes_UnsetHandlersAreNotMounted(t *testing.T) {
	e := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/api/upload", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(e, http.MethodPost, "/api/webhooks/stripe", "", nil).Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health/ready", "", nil).Code)
}

func TestRoutes_BodyLimit(t *testing.T) {
	e := newTestServer(t)

	big := `{"hero":{"title":"` + strings.Repeat("x", 2<<20) + `"}}`
	rec := do(e, http.MethodPost, "/api/content/update", big, map[string]string{
		echo.HeaderContentType: echo.MIMEApplicationJSON,
		secret.HeaderName:      "letmein",
	})
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
