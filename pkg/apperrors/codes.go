package apperrors

// Error codes - organized by domain

// Authentication errors (AUTH_*)
const (
	ErrCodeInvalidSecret = "AUTH_INVALID_SECRET"
	ErrCodeMissingSecret = "AUTH_MISSING_SECRET"
)

// Validation errors (VALIDATION_*)
const (
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeInvalidEmail     = "VALIDATION_INVALID_EMAIL"
	ErrCodeInvalidInput     = "VALIDATION_INVALID_INPUT"
	ErrCodeMissingField     = "VALIDATION_MISSING_FIELD"
	ErrCodeInvalidAmount    = "VALIDATION_INVALID_AMOUNT"
	ErrCodeFileType         = "VALIDATION_FILE_TYPE"
	ErrCodeFileTooLarge     = "VALIDATION_FILE_TOO_LARGE"
)

// Store errors (STORE_*)
const (
	ErrCodeStoreUnconfigured = "STORE_UNCONFIGURED"
	ErrCodeStoreRead         = "STORE_READ_FAILED"
	ErrCodeStoreWrite        = "STORE_WRITE_FAILED"
	ErrCodeBlobWrite         = "STORE_BLOB_WRITE_FAILED"
)

// Upstream provider errors (UPSTREAM_*)
const (
	ErrCodeEmailSendFailed = "UPSTREAM_EMAIL_SEND_FAILED"
	ErrCodePaymentFailed   = "UPSTREAM_PAYMENT_FAILED"
	ErrCodeProviderUnset   = "UPSTREAM_PROVIDER_UNCONFIGURED"
)

// Signature errors (SIGNATURE_*)
const (
	ErrCodeSignatureInvalid = "SIGNATURE_INVALID"
)

// Internal errors (INTERNAL_*)
const (
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnexpectedError   = "INTERNAL_UNEXPECTED_ERROR"
)
