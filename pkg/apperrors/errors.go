package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an AppError independently of its code.
type Kind string

const (
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindStore      Kind = "store"
	KindUpstream   Kind = "upstream"
	KindSignature  Kind = "signature"
	KindRateLimit  Kind = "rate_limit"
	KindInternal   Kind = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Kind       Kind   `json:"-"`
	Code       string `json:"code"`             // Machine-readable error code
	Message    string `json:"message"`          // Human-readable message
	Detail     string `json:"detail,omitempty"` // Additional details
	HTTPStatus int    `json:"-"`                // HTTP status code
	Err        error  `json:"-"`                // Original error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds detail to the error
func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail
	return e
}

// --- Error constructors ---

// NewAuth creates a 401 error for a bad or missing shared secret
func NewAuth(code, message string) *AppError {
	return &AppError{
		Kind:       KindAuth,
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// NewValidation creates a 400 error for rejected input
func NewValidation(code, message string) *AppError {
	return &AppError{
		Kind:       KindValidation,
		Code:       code,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewStore creates a 500 error for key-value or blob store failures
func NewStore(code, message string, err error) *AppError {
	return &AppError{
		Kind:       KindStore,
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewUpstream creates a 502 error for a payment or email provider rejection
func NewUpstream(code, message string, err error) *AppError {
	return &AppError{
		Kind:       KindUpstream,
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewSignature creates a 400 error for a webhook signature mismatch
func NewSignature(message string, err error) *AppError {
	return &AppError{
		Kind:       KindSignature,
		Code:       ErrCodeSignatureInvalid,
		Message:    message,
		Err:        err,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewRateLimited creates a 429 error for a client over its request budget
func NewRateLimited(message string) *AppError {
	return &AppError{
		Kind:       KindRateLimit,
		Code:       ErrCodeRateLimitExceeded,
		Message:    message,
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// NewInternal creates a 500 Internal Server Error
func NewInternal(code, message string, err error) *AppError {
	return &AppError{
		Kind:       KindInternal,
		Code:       code,
		Message:    message,
		Err:        err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// AsAppError attempts to convert an error to AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err wraps an AppError of the given kind
func IsKind(err error, kind Kind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == kind
}
