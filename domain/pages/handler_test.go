package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLoader struct {
	record content.Record
}

func (s staticLoader) Load(context.Context) content.Record { return s.record }

func newTestServer(t *testing.T, r content.Record) *echo.Echo {
	t.Helper()
	renderer, err := NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	h := NewHandler(staticLoader{record: r})
	e.GET("/", h.Home)
	e.GET("/contact", h.Contact)
	e.GET("/enroll", h.Enroll)
	e.GET("/faq", h.FAQ)
	e.GET("/payment", h.Payment)
	e.GET("/payment/success", h.PaymentSuccess)
	e.GET("/admin", h.Admin)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestPages_RenderAll(t *testing.T) {
	e := newTestServer(t, content.Defaults())
	for _, path := range []string{"/", "/contact", "/enroll", "/faq", "/payment", "/payment/success?session_id=cs_1", "/admin"} {
		rec := get(e, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "CodeCamp", path)
	}
}

func TestHome_UsesOverrides(t *testing.T) {
	r := content.Resolve(&content.Override{Hero: &content.Hero{
		Title:           "<Ship> real software",
		BackgroundVideo: "https://cdn.example.com/videos/hero.mp4",
	}})

	body := get(newTestServer(t, r), "/").Body.String()
	assert.Contains(t, body, "&lt;Ship&gt; real software")
	assert.Contains(t, body, `<video src="https://cdn.example.com/videos/hero.mp4"`)
	assert.NotContains(t, body, "<img src=\"\"")
}

func TestFAQ_InitialOpenCount(t *testing.T) {
	r := content.Defaults()
	r.FAQ.InitialOpenCount = 2

	body := get(newTestServer(t, r), "/faq").Body.String()
	assert.Equal(t, 2, strings.Count(body, "<details open>"))
	assert.Equal(t, len(r.FAQ.Items), strings.Count(body, "<details"))
}

func TestPayment_SelectsCycle(t *testing.T) {
	e := newTestServer(t, content.Defaults())

	body := get(e, "/payment?cycle=summer").Body.String()
	assert.Contains(t, body, "Summer Cycle")
	assert.Contains(t, body, `data-amount="120000"`)

	body = get(e, "/payment?cycle=unknown").Body.String()
	assert.Contains(t, body, "Spring Cycle", "unknown ids fall back to the recommended cycle")

	body = get(e, "/payment?canceled=1").Body.String()
	assert.Contains(t, body, "Payment was canceled")
}

func TestPayment_NoCycles(t *testing.T) {
	r := content.Defaults()
	r.ProgramOverview.Cycles = nil

	body := get(newTestServer(t, r), "/payment").Body.String()
	assert.Contains(t, body, "No cycles are open")
}

func TestPriceMinorUnits(t *testing.T) {
	tests := map[string]int64{
		"$1,200":       120000,
		"$1,200.50":    120050,
		"1.200,50 EUR": 120050,
		"€ 999":        99900,
		"Free":         0,
		"":             0,
		"Rp 5.000.000": 500000000,
	}
	for in, want := range tests {
		assert.Equal(t, want, PriceMinorUnits(in), in)
	}
}
