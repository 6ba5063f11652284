// Package worker hosts the push delivery endpoint fed by the notification topic.
package worker

import (
	"log/slog"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/httpserver"
	"bazaar/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// PushPath receives Pub/Sub push envelopes.
const PushPath = "/push"

// ServerParams holds dependencies for the worker server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer builds the worker HTTP server. Pub/Sub push speaks HTTP/1.1 only.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New(httpserver.Options{
		Name:   "bazaar-pushworker",
		Config: params.Cfg,
		Logger: params.Logger,
	})
	srv.Echo().POST(PushPath, params.PushHandler.HandlePush)

	params.Lc.Append(fx.StopHook(srv.Stop))

	return srv, nil
}
