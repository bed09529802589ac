package logger

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader is the HTTP header for request ID
const RequestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware creates a middleware that logs HTTP requests and
// stores a request-scoped logger on the request context.
func RequestLoggerMiddleware(log Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(string(ContextKeyRequestID), requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)

			reqLog := log.WithRequestID(requestID).WithFields(
				Method(req.Method),
				Path(req.URL.Path),
				RemoteIP(c.RealIP()),
			)

			ctx := WithRequestIDContext(req.Context(), requestID)
			ctx = WithLoggerContext(ctx, reqLog)
			c.SetRequest(req.WithContext(ctx))

			reqLog.Debug("Request started")

			err := next(c)
			if err != nil {
				// Let the error handler write the response so the logged status is real.
				c.Error(err)
			}

			status := c.Response().Status
			logFields := []Field{
				Status(status),
				Duration("duration_ms", time.Since(start)),
				Int64("bytes_out", c.Response().Size),
			}

			switch {
			case status >= 500:
				reqLog.Error("Server error response", err, logFields...)
			case status >= 400:
				reqLog.Warn("Client error response", logFields...)
			default:
				reqLog.Info("Request completed", logFields...)
			}

			return nil
		}
	}
}

// RecoveryMiddleware creates a middleware that recovers from panics and logs them
func RecoveryMiddleware(log Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					requestID := GetRequestIDFromContext(c)
					log.WithRequestID(requestID).Error("Panic recovered",
						nil,
						Any("panic", r),
						Method(c.Request().Method),
						Path(c.Request().URL.Path),
					)

					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"error":      "An unexpected error occurred",
						"code":       "INTERNAL_ERROR",
						"request_id": requestID,
					})
				}
			}()
			return next(c)
		}
	}
}

// GetRequestIDFromContext gets request ID from echo context
func GetRequestIDFromContext(c echo.Context) string {
	if requestID, ok := c.Get(string(ContextKeyRequestID)).(string); ok {
		return requestID
	}
	return ""
}
