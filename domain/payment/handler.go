package payment

import (
	"net/http"
	"strings"

	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/payments"
	"github.com/labstack/echo/v4"
)

// Handler creates payment intents and hosted checkout sessions.
type Handler struct {
	provider payments.Provider
	siteURL  string
	currency string
	log      logger.Logger
}

// NewHandler builds the payment handler. A nil provider makes every call
// fail with an upstream error.
func NewHandler(provider payments.Provider, siteURL string, log logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{
		provider: provider,
		siteURL:  strings.TrimRight(siteURL, "/"),
		currency: DefaultCurrency,
		log:      log.WithComponent("payment"),
	}
}

// WithDefaultCurrency sets the currency used when a request names none.
// Invalid codes are ignored.
func (h *Handler) WithDefaultCurrency(currency string) *Handler {
	if c, err := NormalizeCurrency(currency); err == nil {
		h.currency = c
	}
	return h
}

func (h *Handler) normalizeCurrency(c string) (string, error) {
	if strings.TrimSpace(c) == "" {
		return h.currency, nil
	}
	return NormalizeCurrency(c)
}

func intentFailure(c echo.Context, status int, message string) error {
	return c.JSON(status, IntentResponse{Status: "0", Message: message})
}

// CreateIntent handles POST /api/stripe/create-intent
func (h *Handler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return intentFailure(c, http.StatusBadRequest, "Invalid request body")
	}

	amount, err := NormalizeAmount(req.Amount)
	if err != nil {
		return intentFailure(c, http.StatusBadRequest, "Invalid amount: "+err.Error())
	}
	currency, err := h.normalizeCurrency(req.Currency)
	if err != nil {
		return intentFailure(c, http.StatusBadRequest, err.Error())
	}
	if h.provider == nil {
		return intentFailure(c, http.StatusBadGateway, "Payments are not configured")
	}

	ctx := c.Request().Context()
	log := h.log.WithContext(ctx)

	intent, err := h.provider.CreatePaymentIntent(ctx, payments.IntentParams{
		Amount:     amount,
		Currency:   currency,
		CustomerID: strings.TrimSpace(req.CustomerID),
	})
	if err != nil {
		log.Error("Failed to create payment intent", err,
			logger.Int64("amount", amount),
			logger.String("currency", currency),
		)
		return intentFailure(c, http.StatusBadGateway, "Failed to create payment intent")
	}

	log.Info("Payment intent created",
		logger.PaymentIntentID(intent.ID),
		logger.Int64("amount", intent.Amount),
		logger.String("currency", intent.Currency),
	)
	return c.JSON(http.StatusOK, IntentResponse{
		Status: "1",
		Data: &IntentData{
			ClientSecret:    intent.ClientSecret,
			Amount:          intent.Amount,
			Currency:        intent.Currency,
			PaymentIntentID: intent.ID,
		},
	})
}

// CreateCheckoutSession handles POST /api/stripe/create-checkout-session
func (h *Handler) CreateCheckoutSession(c echo.Context) error {
	var req CreateCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, "Invalid request body")
	}

	amount, err := NormalizeAmount(req.Amount)
	if err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidAmount, "Invalid amount: "+err.Error())
	}
	currency, err := h.normalizeCurrency(req.Currency)
	if err != nil {
		return apperrors.NewValidation(apperrors.ErrCodeInvalidInput, err.Error())
	}
	product := strings.TrimSpace(req.ProductName)
	if product == "" {
		product = DefaultProductName
	}
	if h.provider == nil {
		return apperrors.NewUpstream(apperrors.ErrCodeProviderUnset, "Payments are not configured", nil)
	}

	ctx := c.Request().Context()
	session, err := h.provider.CreateCheckoutSession(ctx, payments.CheckoutParams{
		Amount:      amount,
		Currency:    currency,
		ProductName: product,
		SuccessURL:  h.siteURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   h.siteURL + "/payment?canceled=1",
	})
	if err != nil {
		return apperrors.NewUpstream(apperrors.ErrCodePaymentFailed, "Failed to create checkout session", err)
	}

	h.log.WithContext(ctx).Info("Checkout session created",
		logger.SessionID(session.ID),
		logger.String("product", product),
		logger.Int64("amount", amount),
	)
	return c.JSON(http.StatusOK, CheckoutResponse{URL: session.URL, ID: session.ID})
}
