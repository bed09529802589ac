// Package pages renders the public site and the admin editor from the
// resolved content record.
package pages

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

// Page names, one per template file.
const (
	PageHome           = "home"
	PageContact        = "contact"
	PageEnroll         = "enroll"
	PageFAQ            = "faq"
	PagePayment        = "payment"
	PagePaymentSuccess = "payment_success"
	PageAdmin          = "admin"
)

var allPages = []string{PageHome, PageContact, PageEnroll, PageFAQ, PagePayment, PagePaymentSuccess, PageAdmin}

// Renderer implements echo.Renderer with one template set per page, each
// sharing the layout and partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(allPages))}
	for _, name := range allPages {
		t, err := template.New(name).ParseFS(templateFS,
			"templates/layout.html",
			"templates/cycles.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
