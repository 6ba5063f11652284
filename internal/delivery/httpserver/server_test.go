package httpserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	cfg := &config.Config{}
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = 0

	return New(Options{
		Name:   "test",
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer()
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, HealthPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["service"])
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RecoversPanics(t *testing.T) {
	srv := newTestServer()
	srv.Echo().GET("/boom", func(echo.Context) error { panic("boom") })
	rec := httptest.NewRecorder()

	srv.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestServer_ServeAndStop(t *testing.T) {
	srv := newTestServer()
	done := make(chan error, 1)

	go func() { done <- srv.Serve(context.Background()) }()

	require.Eventually(t, func() bool { return srv.Echo().ListenerAddr() != nil }, time.Second, 10*time.Millisecond)
	require.NoError(t, srv.Stop(context.Background()))
	assert.NoError(t, <-done)
}
