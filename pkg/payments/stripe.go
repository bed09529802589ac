package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// MetadataBootcampName is the checkout session metadata key holding the
// product name shown in confirmation emails.
const MetadataBootcampName = "bootcampName"

// StripeProvider implements Provider on the Stripe API.
type StripeProvider struct {
	api           *client.API
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	return &StripeProvider{
		api:           client.New(secretKey, nil),
		webhookSecret: webhookSecret,
	}
}

func (p *StripeProvider) CreatePaymentIntent(ctx context.Context, in IntentParams) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.Amount),
		Currency: stripe.String(in.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, in CheckoutParams) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(in.Currency),
					UnitAmount: stripe.Int64(in.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{MetadataBootcampName: in.ProductName},
		},
	}
	params.AddMetadata(MetadataBootcampName, in.ProductName)
	params.Context = ctx

	s, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	return &CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) VerifyEvent(payload []byte, signature string) (Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := Event{ID: ev.ID, Type: string(ev.Type)}
	if ev.Data != nil {
		var obj struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(ev.Data.Raw, &obj); err == nil {
			out.ObjectID = obj.ID
		}
	}
	return out, nil
}

// Fulfillment loads the payment intent, its latest charge and the checkout
// session that created it.
func (p *StripeProvider) Fulfillment(ctx context.Context, paymentIntentID string) (*Fulfillment, error) {
	piParams := &stripe.PaymentIntentParams{}
	piParams.Context = ctx
	piParams.AddExpand("latest_charge")

	pi, err := p.api.PaymentIntents.Get(paymentIntentID, piParams)
	if err != nil {
		return nil, fmt.Errorf("get payment intent: %w", err)
	}
	if pi.LatestCharge == nil {
		return nil, ErrNotReady
	}

	listParams := &stripe.CheckoutSessionListParams{PaymentIntent: stripe.String(paymentIntentID)}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	var session *stripe.CheckoutSession
	it := p.api.CheckoutSessions.List(listParams)
	for it.Next() {
		session = it.CheckoutSession()
		break
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list checkout sessions: %w", err)
	}
	if session == nil {
		return nil, ErrNotReady
	}

	charge := pi.LatestCharge
	f := &Fulfillment{
		PaymentIntentID: pi.ID,
		SessionID:       session.ID,
		Amount:          pi.Amount,
		Currency:        string(pi.Currency),
		PaidAt:          time.Unix(charge.Created, 0).UTC(),
		ReceiptURL:      charge.ReceiptURL,
		BootcampName:    session.Metadata[MetadataBootcampName],
	}
	if f.BootcampName == "" {
		f.BootcampName = pi.Metadata[MetadataBootcampName]
	}
	if session.CustomerDetails != nil {
		f.CustomerName = session.CustomerDetails.Name
		f.CustomerEmail = session.CustomerDetails.Email
	}
	if f.CustomerEmail == "" && charge.BillingDetails != nil {
		f.CustomerEmail = charge.BillingDetails.Email
		if f.CustomerName == "" {
			f.CustomerName = charge.BillingDetails.Name
		}
	}
	if f.CustomerEmail == "" {
		f.CustomerEmail = pi.ReceiptEmail
	}
	if details := charge.PaymentMethodDetails; details != nil && details.Card != nil {
		f.CardBrand = strings.ToUpper(string(details.Card.Brand))
		f.CardLast4 = details.Card.Last4
	}
	return f, nil
}
