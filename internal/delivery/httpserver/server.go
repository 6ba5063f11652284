// Package httpserver is the echo host shared by the API and the push worker.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery/middleware"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/http2"
)

// HealthPath answers liveness probes and is never request-logged.
const HealthPath = "/health"

// Options configures one server.
type Options struct {
	// Name shows up in start and stop log lines.
	Name   string
	Config *config.Config
	Logger *slog.Logger
	// H2C serves cleartext HTTP/2 alongside HTTP/1.1.
	H2C bool
}

// Server owns an echo instance with recovery, request ids and request
// logging already installed. Routes are added through Echo.
type Server struct {
	name   string
	addr   string
	h2c    bool
	idle   time.Duration
	echo   *echo.Echo
	logger *slog.Logger
}

// New builds a server listening on the configured HTTP port.
func New(opts Options) *Server {
	cfg := opts.Config
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Request id before the logger so every line carries it.
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(opts.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(opts.Logger, cfg).Handle)

	e.GET(HealthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": opts.Name})
	})

	return &Server{
		name:   opts.Name,
		addr:   net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port)),
		h2c:    opts.H2C,
		idle:   cfg.HTTP.Timeouts.IdleTimeout,
		echo:   e,
		logger: opts.Logger.With(slog.String("server", opts.Name)),
	}
}

// Echo exposes the router for route and middleware registration.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Serve blocks until the listener closes. A clean shutdown is not an error.
func (s *Server) Serve(_ context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("addr", s.addr), slog.Bool("h2c", s.h2c))

	var err error
	if s.h2c {
		err = s.echo.StartH2CServer(s.addr, &http2.Server{IdleTimeout: s.idle})
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// Stop drains in-flight requests, bounded by the lifecycle hook timeout.
func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
