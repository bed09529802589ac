// Package webhook handles payment provider events and sends the
// enrollment confirmation emails.
package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/domain/notification"
	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/mailer"
	"github.com/Triaksa-Space/bootcamp-site/pkg/payments"
	"github.com/Triaksa-Space/bootcamp-site/utils"
	"github.com/labstack/echo/v4"
)

// SignatureHeader carries the provider's payload signature.
const SignatureHeader = "stripe-signature"

// MaxPayloadBytes bounds the webhook body.
const MaxPayloadBytes = 64 << 10

// Config holds the addressing used for fulfillment emails.
type Config struct {
	From    string
	ReplyTo string
	AdminTo []string
	Site    notification.Site
}

// Handler verifies webhook deliveries and fulfils successful payments.
type Handler struct {
	provider payments.Provider
	cache    *content.Cache
	mail     mailer.Mailer
	dedupe   Deduper
	cfg      Config
	log      logger.Logger
}

// NewHandler builds the webhook handler. dedupe may be nil, in which case
// every verified delivery is processed.
func NewHandler(provider payments.Provider, cache *content.Cache, mail mailer.Mailer, dedupe Deduper, cfg Config, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		provider: provider,
		cache:    cache,
		mail:     mail,
		dedupe:   dedupe,
		cfg:      cfg,
		log:      log.WithComponent("webhook"),
	}
}

// HandleStripe handles POST /api/webhooks/stripe. Once the signature is
// verified the response is always 200 so the provider does not retry
// failures this handler cannot fix by itself.
func (h *Handler) HandleStripe(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, MaxPayloadBytes))
	if err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Failed to read request body")
	}
	if h.provider == nil {
		return apperrors.NewUpstream(apperrors.ErrCodeProviderUnset, "Payments are not configured", nil)
	}

	event, err := h.provider.VerifyEvent(payload, c.Request().Header.Get(SignatureHeader))
	if err != nil {
		return apperrors.NewSignature("Webhook signature verification failed", err)
	}

	ctx := c.Request().Context()
	log := h.log.WithContext(ctx).WithFields(logger.EventID(event.ID), logger.EventType(event.Type))

	switch event.Type {
	case payments.EventPaymentSucceeded:
		h.fulfil(ctx, log, event)
	case payments.EventCheckoutSessionCompleted:
		log.Info("Checkout session completed", logger.SessionID(event.ObjectID))
	default:
		log.Debug("Ignoring event")
	}
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) fulfil(ctx context.Context, log logger.Logger, event payments.Event) {
	log = log.WithFields(logger.PaymentIntentID(event.ObjectID))

	if h.dedupe != nil && event.ID != "" {
		claimed, err := h.dedupe.Claim(ctx, event.ID)
		switch {
		case err != nil:
			log.Warn("Event dedupe unavailable, processing anyway", logger.Err(err))
		case !claimed:
			log.Info("Duplicate event skipped")
			return
		}
	}

	f, err := h.provider.Fulfillment(ctx, event.ObjectID)
	if err != nil {
		h.release(ctx, log, event.ID)
		if errors.Is(err, payments.ErrNotReady) {
			log.Info("Charge or checkout session not available yet")
			return
		}
		log.Error("Failed to load payment details", err)
		return
	}
	log = log.WithFields(logger.SessionID(f.SessionID))

	tpl := content.Defaults().EmailTemplates
	if h.cache != nil {
		record, age := h.cache.Get(ctx)
		tpl = record.EmailTemplates
		log.Debug("Using cached email templates", logger.Duration("age", age))
	}

	emails, err := notification.RenderEnrollment(tpl, *f, h.cfg.Site)
	if err != nil {
		log.Error("Failed to render enrollment emails", err)
		return
	}
	if h.mail == nil {
		log.Warn("Mailer not configured, enrollment emails not sent")
		return
	}

	if utils.IsValidEmail(f.CustomerEmail) {
		id, err := h.mail.Send(ctx, mailer.Message{
			From:    h.cfg.From,
			To:      []string{f.CustomerEmail},
			ReplyTo: h.cfg.ReplyTo,
			Subject: emails.Customer.Subject,
			HTML:    emails.Customer.HTML,
			Text:    emails.Customer.Text,
		})
		if err != nil {
			log.Error("Failed to send customer email", err, logger.Email(f.CustomerEmail))
		} else {
			log.Info("Customer email sent", logger.Email(f.CustomerEmail), logger.MessageID(id))
		}
	} else {
		log.Warn("Payment has no usable customer email", logger.Email(f.CustomerEmail))
	}

	if len(h.cfg.AdminTo) == 0 {
		return
	}
	replyTo := ""
	if utils.IsValidEmail(f.CustomerEmail) {
		replyTo = f.CustomerEmail
	}
	id, err := h.mail.Send(ctx, mailer.Message{
		From:    h.cfg.From,
		To:      h.cfg.AdminTo,
		ReplyTo: replyTo,
		Subject: emails.Admin.Subject,
		HTML:    emails.Admin.HTML,
	})
	if err != nil {
		log.Error("Failed to send admin email", err)
		return
	}
	log.Info("Admin email sent", logger.MessageID(id))
}

func (h *Handler) release(ctx context.Context, log logger.Logger, eventID string) {
	if h.dedupe == nil || eventID == "" {
		return
	}
	if err := h.dedupe.Release(ctx, eventID); err != nil {
		log.Warn("Failed to release event claim", logger.Err(err))
	}
}
