// Package payments wraps the payment processor used for bootcamp checkout
// and webhook-driven fulfillment.
package payments

import (
	"context"
	"errors"
	"time"
)

// ErrNotReady is returned by Fulfillment when the charge or checkout session
// for a payment is not available yet.
var ErrNotReady = errors.New("payments: charge or checkout session not available yet")

// ErrInvalidSignature wraps any webhook verification failure.
var ErrInvalidSignature = errors.New("payments: invalid webhook signature")

// Event types acted on by the webhook handler.
const (
	EventPaymentSucceeded         = "payment_intent.succeeded"
	EventCheckoutSessionCompleted = "checkout.session.completed"
)

// IntentParams is the PaymentIntentContext of a single checkout attempt.
type IntentParams struct {
	Amount     int64
	Currency   string
	CustomerID string
}

type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

type CheckoutParams struct {
	Amount      int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// Event is a verified webhook delivery.
type Event struct {
	ID   string
	Type string
	// ObjectID is the id of the event's data object (payment intent id for
	// payment events, session id for checkout events).
	ObjectID string
}

// Fulfillment carries what the confirmation emails need about a completed
// payment. It is built per event and never persisted.
type Fulfillment struct {
	PaymentIntentID string
	SessionID       string
	CustomerName    string
	CustomerEmail   string
	Amount          int64
	Currency        string
	PaidAt          time.Time
	BootcampName    string
	ReceiptURL      string
	CardBrand       string
	CardLast4       string
}

// Provider is the payment processor.
type Provider interface {
	CreatePaymentIntent(ctx context.Context, p IntentParams) (*Intent, error)
	CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error)
	VerifyEvent(payload []byte, signature string) (Event, error)
	Fulfillment(ctx context.Context, paymentIntentID string) (*Fulfillment, error)
}
