package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/labstack/echo/v4"
)

// statusClientClosedRequest is written when the caller went away mid-request.
const statusClientClosedRequest = 499

// ErrorMiddleware turns handler errors into JSON envelopes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// failure is the reply chosen for an error.
type failure struct {
	status  int
	code    string
	message string
	details any
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := classify(err)
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	switch {
	case f.status >= http.StatusInternalServerError:
		logger.Error("Request failed",
			slog.Any("error", err),
			slog.String("code", f.code),
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
		)
	case f.status == statusClientClosedRequest:
		logger.Debug("Client closed request", slog.Any("error", err))
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(f.status)

		return
	}
	_ = response.Error(c, f.status, f.code, f.message, f.details)
}

func classify(err error) failure {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failure{
			status:  appErr.HTTPCode(),
			code:    appErr.ErrorCode(),
			message: appErr.Message(),
			details: appErr.Details(),
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		return failure{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	if errors.Is(err, context.Canceled) {
		return failure{status: statusClientClosedRequest, code: "REQUEST_CANCELED", message: "Request canceled"}
	}

	return failure{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: "Internal server error, please try again later",
	}
}
