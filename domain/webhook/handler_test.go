package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Triaksa-Space/bootcamp-site/domain/content"
	"github.com/Triaksa-Space/bootcamp-site/domain/notification"
	"github.com/Triaksa-Space/bootcamp-site/pkg/apperrors"
	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/Triaksa-Space/bootcamp-site/pkg/mailer"
	"github.com/Triaksa-Space/bootcamp-site/pkg/payments"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSignature = "t=1,v1=good"

type fakeProvider struct {
	event          payments.Event
	fulfillment    *payments.Fulfillment
	fulfillmentErr error
	lookups        int
}

func (p *fakeProvider) CreatePaymentIntent(context.Context, payments.IntentParams) (*payments.Intent, error) {
	return nil, errors.New("not used")
}

func (p *fakeProvider) CreateCheckoutSession(context.Context, payments.CheckoutParams) (*payments.CheckoutSession, error) {
	return nil, errors.New("not used")
}

func (p *fakeProvider) VerifyEvent(_ []byte, signature string) (payments.Event, error) {
	if signature != validSignature {
		return payments.Event{}, payments.ErrInvalidSignature
	}
	return p.event, nil
}

func (p *fakeProvider) Fulfillment(context.Context, string) (*payments.Fulfillment, error) {
	p.lookups++
	return p.fulfillment, p.fulfillmentErr
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	fail map[string]error
}

func (m *fakeMailer) Send(_ context.Context, msg mailer.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.fail[msg.To[0]]; err != nil {
		return "", err
	}
	m.sent = append(m.sent, msg)
	return "msg_" + msg.To[0], nil
}

type memDeduper struct {
	claimed  map[string]bool
	released []string
	err      error
}

func (d *memDeduper) Claim(_ context.Context, id string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if d.claimed[id] {
		return false, nil
	}
	d.claimed[id] = true
	return true, nil
}

func (d *memDeduper) Release(_ context.Context, id string) error {
	delete(d.claimed, id)
	d.released = append(d.released, id)
	return nil
}

func succeededProvider() *fakeProvider {
	return &fakeProvider{
		event: payments.Event{ID: "evt_1", Type: payments.EventPaymentSucceeded, ObjectID: "pi_1"},
		fulfillment: &payments.Fulfillment{
			PaymentIntentID: "pi_1",
			SessionID:       "cs_1",
			CustomerName:    "Jamie",
			CustomerEmail:   "jamie@example.com",
			Amount:          120000,
			Currency:        "usd",
			PaidAt:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			BootcampName:    "Spring Cycle",
		},
	}
}

func testConfig() Config {
	return Config{
		From:    "CodeCamp <hello@codecamp.example.com>",
		AdminTo: []string{"admin@codecamp.example.com"},
		Site:    notification.Site{Name: "CodeCamp", URL: "https://codecamp.example.com"},
	}
}

func deliver(h *Handler, signature string) *httptest.ResponseRecorder {
	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Nop())
	e.POST("/api/webhooks/stripe", h.HandleStripe)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", strings.NewReader(`{"id":"evt_1"}`))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func staticCache(r content.Record) *content.Cache {
	return content.NewCache(func(context.Context) content.Record { return r }, time.Minute)
}

func TestHandleStripe_InvalidSignature(t *testing.T) {
	p := succeededProvider()
	m := &fakeMailer{}
	h := NewHandler(p, staticCache(content.Defaults()), m, nil, testConfig(), logger.Nop())

	for _, sig := range []string{"", "t=1,v1=forged"} {
		rec := deliver(h, sig)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Empty(t, m.sent)
	assert.Zero(t, p.lookups)
}

func TestHandleStripe_PaymentSucceededSendsBothEmails(t *testing.T) {
	record := content.Defaults()
	record.EmailTemplates.EnrollmentCustomer.SubjectPrefix = "You're in:"

	m := &fakeMailer{}
	h := NewHandler(succeededProvider(), staticCache(record), m, nil, testConfig(), logger.Nop())

	rec := deliver(h, validSignature)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	require.Len(t, m.sent, 2)
	customer, admin := m.sent[0], m.sent[1]
	assert.Equal(t, []string{"jamie@example.com"}, customer.To)
	assert.Equal(t, "You're in: Spring Cycle", customer.Subject)
	assert.Contains(t, customer.HTML, "$1,200.00")
	assert.NotEmpty(t, customer.Text)

	assert.Equal(t, []string{"admin@codecamp.example.com"}, admin.To)
	assert.Equal(t, "jamie@example.com", admin.ReplyTo)
	assert.Contains(t, admin.Subject, "Jamie")
}

func TestHandleStripe_EmailFailuresStillAcknowledge(t *testing.T) {
	m := &fakeMailer{fail: map[string]error{
		"jamie@example.com":          errors.New("rate limited"),
		"admin@codecamp.example.com": errors.New("rejected"),
	}}
	h := NewHandler(succeededProvider(), staticCache(content.Defaults()), m, nil, testConfig(), logger.Nop())

	rec := deliver(h, validSignature)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, m.sent)
}

func TestHandleStripe_CustomerFailureStillSendsAdmin(t *testing.T) {
	m := &fakeMailer{fail: map[string]error{"jamie@example.com": errors.New("bounced")}}
	h := NewHandler(succeededProvider(), staticCache(content.Defaults()), m, nil, testConfig(), logger.Nop())

	assert.Equal(t, http.StatusOK, deliver(h, validSignature).Code)
	require.Len(t, m.sent, 1)
	assert.Equal(t, []string{"admin@codecamp.example.com"}, m.sent[0].To)
}

func TestHandleStripe_NotReady(t *testing.T) {
	p := succeededProvider()
	p.fulfillment = nil
	p.fulfillmentErr = payments.ErrNotReady
	m := &fakeMailer{}
	d := &memDeduper{claimed: map[string]bool{}}
	h := NewHandler(p, staticCache(content.Defaults()), m, d, testConfig(), logger.Nop())

	assert.Equal(t, http.StatusOK, deliver(h, validSignature).Code)
	assert.Empty(t, m.sent)
	assert.Equal(t, []string{"evt_1"}, d.released, "a later redelivery must be processed")
	assert.False(t, d.claimed["evt_1"])
}

func TestHandleStripe_LookupErrorAcknowledged(t *testing.T) {
	p := succeededProvider()
	p.fulfillment = nil
	p.fulfillmentErr = errors.New("stripe unavailable")
	m := &fakeMailer{}

	assert.Equal(t, http.StatusOK, deliver(NewHandler(p, nil, m, nil, testConfig(), logger.Nop()), validSignature).Code)
	assert.Empty(t, m.sent)
}

func TestHandleStripe_DuplicateSkipped(t *testing.T) {
	p := succeededProvider()
	m := &fakeMailer{}
	d := &memDeduper{claimed: map[string]bool{}}
	h := NewHandler(p, staticCache(content.Defaults()), m, d, testConfig(), logger.Nop())

	assert.Equal(t, http.StatusOK, deliver(h, validSignature).Code)
	assert.Equal(t, http.StatusOK, deliver(h, validSignature).Code)

	assert.Len(t, m.sent, 2)
	assert.Equal(t, 1, p.lookups)
}

func TestHandleStripe_DedupeErrorProcessesAnyway(t *testing.T) {
	m := &fakeMailer{}
	d := &memDeduper{err: errors.New("redis down")}
	h := NewHandler(succeededProvider(), staticCache(content.Defaults()), m, d, testConfig(), logger.Nop())

	assert.Equal(t, http.StatusOK, deliver(h, validSignature).Code)
	assert.Len(t, m.sent, 2)
}

func TestHandleStripe_OtherEventsAcknowledged(t *testing.T) {
	for _, typ := range []string{payments.EventCheckoutSessionCompleted, "customer.created"} {
		p := succeededProvider()
		p.event.Type = typ
		m := &fakeMailer{}

		rec := deliver(NewHandler(p, nil, m, nil, testConfig(), logger.Nop()), validSignature)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, m.sent)
		assert.Zero(t, p.lookups)
	}
}

func TestHandleStripe_MissingCustomerEmail(t *testing.T) {
	p := succeededProvider()
	p.fulfillment.CustomerEmail = ""
	m := &fakeMailer{}

	assert.Equal(t, http.StatusOK, deliver(NewHandler(p, nil, m, nil, testConfig(), logger.Nop()), validSignature).Code)
	require.Len(t, m.sent, 1)
	assert.Equal(t, []string{"admin@codecamp.example.com"}, m.sent[0].To)
	assert.Empty(t, m.sent[0].ReplyTo)
}

func TestHandleStripe_UnusableCustomerEmailOnlyNotifiesAdmin(t *testing.T) {
	for _, email := range []string{"", "Jamie <jamie@example.com>", "jamie@localhost"} {
		p := succeededProvider()
		p.fulfillment.CustomerEmail = email
		m := &fakeMailer{}
		h := NewHandler(p, staticCache(content.Defaults()), m, nil, testConfig(), logger.Nop())

		assert.Equal(t, http.StatusOK, deliver(h, validSignature).Code)
		require.Len(t, m.sent, 1, email)
		assert.Equal(t, []string{"admin@codecamp.example.com"}, m.sent[0].To)
		assert.Empty(t, m.sent[0].ReplyTo)
	}
}
