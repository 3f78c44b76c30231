package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/response"
	domainerrors "github.com/Hritik000/valentine-gifts-hub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error
// leaving the service becomes a stable JSON shape; 5xx diagnostics stay in
// server logs and never reach the client payload.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var rateErr *domainerrors.RateLimitError
	if errors.As(err, &rateErr) {
		retryAfter := rateErr.RetryAfterSeconds()
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
		_ = c.JSON(rateErr.HTTPCode(), response.Response{
			Success: false,
			Code:    rateErr.HTTPCode(),
			Message: rateErr.Message(),
			Data:    map[string]any{"retryAfter": retryAfter},
			Error: &response.ErrorInfo{
				Code: rateErr.ErrorCode(),
			},
		})

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			// Upstream diagnostics (gateway payloads, bucket names,
			// driver errors) are for operators only.
			m.logger.Error("request failed",
				slog.String("error_code", appErr.ErrorCode()),
				slog.String("details", details),
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			details = ""
		}

		// Verification endpoints promise a machine-checkable valid flag.
		var data any
		switch appErr.ErrorCode() {
		case "SIGNATURE_MISMATCH", "ORDER_NOT_VERIFIED":
			data = map[string]any{"valid": false}
		}

		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Data:    data,
			Error: &response.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: details,
			},
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = c.JSON(httpErr.Code, response.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &response.ErrorInfo{
				Code: "HTTP_ERROR",
			},
		})

		return
	}

	m.logger.Error("unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &response.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}
