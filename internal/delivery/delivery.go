// Package delivery holds the transports that expose the application.
package delivery

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"
)

const group = `group:"deliveries"`

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}

// Provide registers constructor as one of the application's deliveries.
func Provide(constructor any) fx.Option {
	return fx.Provide(fx.Annotate(constructor, fx.ResultTags(group)))
}

// RunParams collects every registered delivery.
type RunParams struct {
	fx.In
	fx.Shutdowner

	Ctx        context.Context
	Logger     *slog.Logger
	Deliveries []Delivery `group:"deliveries"`
}

// Run starts each delivery in its own goroutine. A delivery that cannot
// serve shuts the application down so every OnStop hook still runs.
func Run(params RunParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(params.Ctx); err != nil {
				params.Logger.Error("Delivery stopped with error", slog.Any("error", err))

				if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
