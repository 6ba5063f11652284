// Package context carries request-scoped values from the transports down to
// the usecases: the request id, a logger tagged with it, and the caller.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request id is read from and echoed on.
const HeaderXRequestID = "X-Request-Id"

// Keys of values stored on echo.Context.
const (
	KeyRequestID = "request_id"
	KeyUserID    = "userID"
	KeyRoles     = "roles"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// GetRequestID returns the id assigned by the request-id middleware. Requests
// that bypassed it get a fresh id so responses always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(KeyRequestID).(string); ok && id != "" {
		return id
	}

	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores requestID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
