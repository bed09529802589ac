package contact

import (
	"net/http"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/domain/notification"
	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/mailer"
	"github.com/labstack/echo/v4"
)

// Config holds the addressing for contact emails.
type Config struct {
	From    string
	AdminTo []string
}

// Handler serves POST /api/contact.
type Handler struct {
	cache *content.Cache
	mail  mailer.Mailer
	cfg   Config
	log   logger.Logger
}

func NewHandler(cache *content.Cache, mail mailer.Mailer, cfg Config, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{cache: cache, mail: mail, cfg: cfg, log: log.WithComponent("contact")}
}

// Submit sends the submission to the admins and a confirmation to the
// visitor. Only the admin email is required to succeed.
func (h *Handler) Submit(c echo.Context) error {
	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}
	s, err := req.Validate()
	if err != nil {
		return err
	}
	if h.mail == nil || len(h.cfg.AdminTo) == 0 {
		return apperrors.NewUpstream(apperrors.ErrCodeProviderUnset, "Email is not configured", nil)
	}

	ctx := c.Request().Context()
	log := h.log.WithContext(ctx).WithFields(logger.Email(s.Email))

	tpl := content.Defaults().EmailTemplates
	if h.cache != nil {
		record, _ := h.cache.Get(ctx)
		tpl = record.EmailTemplates
	}
	emails, err := notification.RenderContact(tpl, s)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to render email", err)
	}

	adminID, err := h.mail.Send(ctx, mailer.Message{
		From:    h.cfg.From,
		To:      h.cfg.AdminTo,
		ReplyTo: s.Email,
		Subject: emails.Admin.Subject,
		HTML:    emails.Admin.HTML,
	})
	if err != nil {
		return apperrors.NewUpstream(apperrors.ErrCodeEmailSendFailed, "Failed to send message", err)
	}
	log.Info("Contact message sent to admin", logger.MessageID(adminID))

	resp := SubmitResponse{Success: true, AdminEmailID: adminID}
	userID, err := h.mail.Send(ctx, mailer.Message{
		From:    h.cfg.From,
		To:      []string{s.Email},
		Subject: emails.Confirmation.Subject,
		HTML:    emails.Confirmation.HTML,
		Text:    emails.Confirmation.Text,
	})
	if err != nil {
		log.Warn("Failed to send contact confirmation", logger.Err(err))
		resp.UserEmailError = err.Error()
	} else {
		resp.UserEmailID = userID
		resp.UserEmailSent = true
	}
	return c.JSON(http.StatusOK, resp)
}
