package routes

import (
	"time"

	"github.com/Triaksa-Space/bootcamp-site/domain/contact"
	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/domain/health"
	"github.com/Triaksa-Space/bootcamp-site/domain/pages"
	"github.com/Triaksa-Space/bootcamp-site/domain/payment"
	"github.com/Triaksa-Space/bootcamp-site/domain/upload"
	"github.com/Triaksa-Space/bootcamp-site/domain/webhook"
	"github.com/Triaksa-Space/bootcamp-site/middleware"
	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/secret"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers groups everything RegisterRoutes mounts. A nil handler leaves its
// routes unregistered.
type Handlers struct {
	Content *content.Handler
	Upload  *upload.Handler
	Payment *payment.Handler
	Webhook *webhook.Handler
	Contact *contact.Handler
	Pages   *pages.Handler
	Health  *health.Handler

	ContactLimit middleware.RateLimiterConfig
}

// Body limits per route group. Upload limits are enforced per file after
// the multipart form is parsed.
const (
	jsonBodyLimit   = "1M"
	uploadBodyLimit = "60M"
	webhookLimit    = "64K"
)

func RegisterRoutes(e *echo.Echo, h Handlers) {
	// Health routes
	if h.Health != nil {
		hg := e.Group("/health")
		hg.GET("/live", h.Health.Liveness)
		hg.GET("/ready", h.Health.Readiness)
		hg.GET("/stats", h.Health.Stats)
	}

	api := e.Group("/api")

	// Content routes
	if h.Content != nil {
		api.GET("/content", h.Content.GetContent)
		api.POST("/content/update", h.Content.UpdateContent, echomw.BodyLimit(jsonBodyLimit))
	}

	if h.Upload != nil {
		api.POST("/upload", h.Upload.Upload, echomw.BodyLimit(uploadBodyLimit))
	}

	if h.Contact != nil {
		api.POST("/contact", h.Contact.Submit,
			echomw.BodyLimit(jsonBodyLimit),
			middleware.RateLimiterMiddleware(h.ContactLimit),
		)
	}

	// Payment routes
	if h.Payment != nil {
		stripe := api.Group("/stripe", echomw.BodyLimit(jsonBodyLimit))
		stripe.POST("/create-intent", h.Payment.CreateIntent)
		stripe.POST("/create-checkout-session", h.Payment.CreateCheckoutSession)
	}
	if h.Webhook != nil {
		api.POST("/webhooks/stripe", h.Webhook.HandleStripe, echomw.BodyLimit(webhookLimit))
	}

	// Page routes
	if h.Pages != nil {
		e.GET("/", h.Pages.Home)
		e.GET("/contact", h.Pages.Contact)
		e.GET("/enroll", h.Pages.Enroll)
		e.GET("/faq", h.Pages.FAQ)
		e.GET("/payment", h.Pages.Payment)
		e.GET("/payment/success", h.Pages.PaymentSuccess)
		e.GET("/admin", h.Pages.Admin)
	}
}

// ServerOptions configures the echo instance built by NewServer.
type ServerOptions struct {
	Log         logger.Logger
	CORSOrigins []string
	Renderer    echo.Renderer
}

// NewServer builds an echo instance with the shared middleware chain and
// error handler installed.
func NewServer(opts ServerOptions) *echo.Echo {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = opts.Renderer
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log)
	e.Server.ReadHeaderTimeout = 10 * time.Second

	e.Use(logger.RecoveryMiddleware(log))
	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(echomw.Secure())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  opts.CORSOrigins,
		AllowMethods:  []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, secret.HeaderName, webhook.SignatureHeader},
		ExposeHeaders: []string{echo.HeaderContentLength, logger.RequestIDHeader},
		MaxAge:        86400,
	}))

	return e
}
