package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signedPayload(t *testing.T, payload, secret string) *webhook.SignedPayload {
	t.Helper()
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    secret,
		Timestamp: time.Now(),
	})
}

func TestStripeProvider_VerifyEvent(t *testing.T) {
	p := NewStripeProvider("sk_test_123", testWebhookSecret)
	payload := `{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_42", "object": "payment_intent"}}
	}`
	signed := signedPayload(t, payload, testWebhookSecret)

	ev, err := p.VerifyEvent(signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, Event{ID: "evt_1", Type: EventPaymentSucceeded, ObjectID: "pi_42"}, ev)
}

func TestStripeProvider_VerifyEventRejectsBadSignature(t *testing.T) {
	p := NewStripeProvider("sk_test_123", testWebhookSecret)
	signed := signedPayload(t, `{"id":"evt_1","object":"event","type":"charge.succeeded"}`, "whsec_other")

	_, err := p.VerifyEvent(signed.Payload, signed.Header)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	_, err = p.VerifyEvent([]byte(`{}`), "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestStripeProvider_VerifyEventRejectsTamperedBody(t *testing.T) {
	p := NewStripeProvider("sk_test_123", testWebhookSecret)
	signed := signedPayload(t, `{"id":"evt_1","object":"event","type":"charge.succeeded"}`, testWebhookSecret)

	_, err := p.VerifyEvent([]byte(`{"id":"evt_2","object":"event","type":"charge.succeeded"}`), signed.Header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
