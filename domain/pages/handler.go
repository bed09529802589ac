package pages

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/labstack/echo/v4"
)

// ContentLoader returns the resolved record. content.Store satisfies it.
type ContentLoader interface {
	Load(ctx context.Context) content.Record
}

// View is the data passed to every page template.
type View struct {
	Content content.Record

	// Payment page only.
	Cycle    *content.BootcampCycle
	Amount   int64
	Canceled bool

	// Payment success page only.
	SessionID string
}

// Handler serves the server-rendered pages.
type Handler struct {
	content ContentLoader
}

func NewHandler(loader ContentLoader) *Handler {
	return &Handler{content: loader}
}

func (h *Handler) view(c echo.Context) View {
	return View{Content: h.content.Load(c.Request().Context())}
}

func (h *Handler) page(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, name, h.view(c))
	}
}

func (h *Handler) Home(c echo.Context) error    { return h.page(PageHome)(c) }
func (h *Handler) Contact(c echo.Context) error { return h.page(PageContact)(c) }
func (h *Handler) Enroll(c echo.Context) error  { return h.page(PageEnroll)(c) }
func (h *Handler) FAQ(c echo.Context) error     { return h.page(PageFAQ)(c) }
func (h *Handler) Admin(c echo.Context) error   { return h.page(PageAdmin)(c) }

// Payment renders the checkout page for ?cycle=<id>. Unknown or missing ids
// fall back to the recommended cycle.
func (h *Handler) Payment(c echo.Context) error {
	v := h.view(c)
	v.Canceled = c.QueryParam("canceled") != ""

	cycle, ok := v.Content.FindCycle(c.QueryParam("cycle"))
	if !ok {
		cycle, ok = v.Content.RecommendedCycle()
	}
	if ok {
		v.Cycle = &cycle
		v.Amount = PriceMinorUnits(cycle.Price)
	}
	return c.Render(http.StatusOK, PagePayment, v)
}

// PaymentSuccess renders the page the checkout redirects to.
func (h *Handler) PaymentSuccess(c echo.Context) error {
	v := h.view(c)
	v.SessionID = c.QueryParam("session_id")
	return c.Render(http.StatusOK, PagePaymentSuccess, v)
}

// PriceMinorUnits reads a display price such as "$1,200" or "1.200,50 EUR"
// as minor units. A price without digits yields 0.
func PriceMinorUnits(price string) int64 {
	var b strings.Builder
	for _, r := range price {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == ',':
			b.WriteRune(r)
		}
	}
	s := strings.Trim(b.String(), ".,")
	if s == "" {
		return 0
	}

	// The last separator is decimal when followed by exactly two digits.
	if i := strings.LastIndexAny(s, ".,"); i >= 0 && len(s)-i-1 == 2 {
		s = strings.NewReplacer(".", "", ",", "").Replace(s[:i]) + "." + s[i+1:]
	} else {
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}
