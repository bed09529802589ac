package apperrors

import (
	"net/http"

	"github.com/Triaksa-Space/bootcamp-site/pkg/logger"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard error response structure
type ErrorResponse struct {
	Error     string `json:"error"`                // Human-readable message
	Code      string `json:"code,omitempty"`       // Error code
	Detail    string `json:"detail,omitempty"`     // Additional details
	RequestID string `json:"request_id,omitempty"` // Request ID for tracing
}

// HTTPErrorHandler returns an Echo error handler that uses structured logging
func HTTPErrorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		requestID := logger.GetRequestIDFromContext(c)
		reqLog := logger.FromContext(c.Request().Context(), log.WithRequestID(requestID))

		var response ErrorResponse
		var status int

		if e, ok := AsAppError(err); ok {
			status = e.HTTPStatus
			response = ErrorResponse{
				Error:     e.Message,
				Code:      e.Code,
				Detail:    e.Detail,
				RequestID: requestID,
			}

			if status >= 500 {
				reqLog.Error("Internal error",
					e.Err,
					logger.String("error_code", e.Code),
					logger.String("message", e.Message),
				)
			} else {
				reqLog.Warn("Client error",
					logger.String("error_code", e.Code),
					logger.String("message", e.Message),
				)
			}
		} else if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(status)
			}
			response = ErrorResponse{
				Error:     msg,
				Code:      "HTTP_ERROR",
				RequestID: requestID,
			}
			if status >= 500 {
				reqLog.Error("HTTP error", nil, logger.Status(status), logger.String("message", msg))
			}
		} else {
			status = http.StatusInternalServerError
			response = ErrorResponse{
				Error:     "An unexpected error occurred",
				Code:      ErrCodeUnexpectedError,
				RequestID: requestID,
			}
			reqLog.Error("Unhandled error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
		} else {
			_ = c.JSON(status, response)
		}
	}
}

// RespondWithError is a helper to return an AppError response
func RespondWithError(c echo.Context, err *AppError) error {
	return c.JSON(err.HTTPStatus, ErrorResponse{
		Error:     err.Message,
		Code:      err.Code,
		Detail:    err.Detail,
		RequestID: logger.GetRequestIDFromContext(c),
	})
}

// RespondWithSuccess is a helper to return a success response
func RespondWithSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
