package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	newContext := func(ctx context.Context) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

		return echo.New().NewContext(req, httptest.NewRecorder())
	}

	t.Run("echo context wins", func(t *testing.T) {
		c := newContext(WithRequestID(context.Background(), "from-request"))
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		c := newContext(WithRequestID(context.Background(), "from-request"))

		assert.Equal(t, "from-request", GetRequestID(c))
	})

	t.Run("mints an id when absent", func(t *testing.T) {
		_, err := uuid.Parse(GetRequestID(newContext(context.Background())))

		assert.NoError(t, err)
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
