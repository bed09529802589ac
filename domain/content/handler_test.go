package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(b *memBackend) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Nop())

	h := NewHandler(newTestStore(b))
	e.GET("/api/content", h.GetContent)
	e.POST("/api/content/update", h.UpdateContent)
	return e
}

func doRequest(e *echo.Echo, method, path, body, credential string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if credential != "" {
		req.Header.Set(secret.HeaderName, credential)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetContent(t *testing.T) {
	b := newMemBackend()
	b.values[DefaultKey] = []byte(`{"hero":{"title":"From store"}}`)

	rec := doRequest(newTestServer(b), http.MethodGet, "/api/content", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "From store", resp.Content.Hero.Title)
	assert.Equal(t, Defaults().FAQ, resp.Content.FAQ)
}

func TestUpdateContent_Unauthorized(t *testing.T) {
	b := newMemBackend()
	e := newTestServer(b)

	rec := doRequest(e, http.MethodPost, "/api/content/update", `{"hero":{}}`, "nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/content/update", `{"hero":{}}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, b.sets)
}

func TestUpdateContent_MissingHero(t *testing.T) {
	b := newMemBackend()

	rec := doRequest(newTestServer(b), http.MethodPost, "/api/content/update", `{"faq":{"title":"x"}}`, testSecret)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.sets)

	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestUpdateContent_Success(t *testing.T) {
	b := newMemBackend()
	e := newTestServer(b)

	rec := doRequest(e, http.MethodPost, "/api/content/update", `{"hero":{"title":"Updated"}}`, testSecret)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, 1, b.sets)

	rec = doRequest(e, http.MethodGet, "/api/content", "", "")
	var resp ContentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Updated", resp.Content.Hero.Title)
}

func TestUpdateContent_StoreFailure(t *testing.T) {
	b := newMemBackend()
	b.setErr = assert.AnError

	rec := doRequest(newTestServer(b), http.MethodPost, "/api/content/update", `{"hero":{}}`, testSecret)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpdateContent_OversizedBodyChecksCredentialFirst(t *testing.T) {
	b := newMemBackend()
	e := newTestServer(b)
	big := `{"hero":{"title":"` + strings.Repeat("x", MaxBodyBytes) + `"}}`

	rec := doRequest(e, http.MethodPost, "/api/content/update", big, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/content/update", big, testSecret)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, b.sets)
}
