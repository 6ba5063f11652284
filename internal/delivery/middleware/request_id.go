package middleware

import (
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// maxRequestIDLength bounds client-supplied request ids before they reach logs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger  *slog.Logger
	process echo.MiddlewareFunc
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	m := &RequestIDMiddleware{logger: logger}
	m.process = echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator:        uuid.NewString,
		TargetHeader:     deliverycontext.HeaderXRequestID,
		RequestIDHandler: m.bind,
	})

	return m
}

// Process reuses the X-Request-Id header when it is printable ASCII of sane
// length, otherwise mints a uuid. The id is echoed in the response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return m.process(next)
}

// bind stores the id and a child logger on both the echo and the request
// context so services log with it.
func (m *RequestIDMiddleware) bind(c echo.Context, requestID string) {
	if !validRequestID(requestID) {
		requestID = uuid.NewString()
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)
	}

	deliverycontext.SetRequestID(c, requestID)

	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
