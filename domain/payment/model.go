package payment

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

const (
	DefaultCurrency    = "usd"
	DefaultProductName = "Bootcamp Enrollment"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidCurrency = errors.New("currency must be an ISO 4217 code")
)

// CreateIntentRequest is the body of POST /api/stripe/create-intent.
// Amount is a number or a numeric string in minor currency units.
type CreateIntentRequest struct {
	Amount     json.RawMessage `json:"amount"`
	CustomerID string          `json:"customerId"`
	Currency   string          `json:"currency"`
}

type IntentData struct {
	ClientSecret    string `json:"clientSecret"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	PaymentIntentID string `json:"paymentIntentId"`
}

// IntentResponse uses status "1" for success and "0" for failure.
type IntentResponse struct {
	Status  string      `json:"status"`
	Data    *IntentData `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// CreateCheckoutRequest is the body of POST /api/stripe/create-checkout-session.
type CreateCheckoutRequest struct {
	Amount      json.RawMessage `json:"amount"`
	Currency    string          `json:"currency"`
	ProductName string          `json:"productName"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// NormalizeAmount accepts a JSON number or numeric string and rounds it to
// whole minor units. Zero, negative and non-finite amounts are rejected.
func NormalizeAmount(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, ErrInvalidAmount
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, ErrInvalidAmount
		}
		s = n.String()
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	rounded := math.Round(f)
	if rounded <= 0 || rounded > math.MaxInt64/2 {
		return 0, ErrInvalidAmount
	}
	return int64(rounded), nil
}

// NormalizeCurrency validates an ISO 4217 code, lowercases it and applies
// the default.
func NormalizeCurrency(c string) (string, error) {
	c = strings.TrimSpace(c)
	if c == "" {
		return DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(c)
	if err != nil || unit == currency.XXX {
		return "", ErrInvalidCurrency
	}
	return strings.ToLower(unit.String()), nil
}
