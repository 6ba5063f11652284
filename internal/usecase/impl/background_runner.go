package impl

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/errors"

	"go.uber.org/fx"
)

// BackgroundRunner runs fire-and-forget work detached from the request that
// triggered it. Each task gets its own deadline, and a panic or error never
// reaches the caller. In-flight tasks are drained on shutdown.
type BackgroundRunner struct {
	wg      sync.WaitGroup
	timeout time.Duration
	logger  *slog.Logger
}

// BackgroundRunnerParams holds dependencies for BackgroundRunner, injected by Fx.
type BackgroundRunnerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBackgroundRunner is the constructor for BackgroundRunner.
func NewBackgroundRunner(params BackgroundRunnerParams) *BackgroundRunner {
	runner := newBackgroundRunner(params.Config.Checkout.NotifyTimeout, params.Logger)

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return runner.Wait(ctx)
		},
	})

	return runner
}

func newBackgroundRunner(timeout time.Duration, logger *slog.Logger) *BackgroundRunner {
	return &BackgroundRunner{
		timeout: timeout,
		logger:  logger,
	}
}

// Go starts task in its own goroutine. The task context keeps the values of
// ctx (request id, logger) but not its cancellation.
func (r *BackgroundRunner) Go(ctx context.Context, name string, task func(ctx context.Context) error) {
	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger).With(slog.String("task", name))

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Background task panicked",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()

		err := task(taskCtx)
		switch {
		case err == nil:
		case errors.IsAny(err, context.DeadlineExceeded, context.Canceled):
			logger.Warn("Background task timed out", slog.Duration("timeout", r.timeout), slog.Any("error", err))
		default:
			logger.Error("Background task failed", slog.Any("error", err))
		}
	}()
}

// Wait blocks until every started task returns or ctx is done.
func (r *BackgroundRunner) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "background tasks did not finish")
	}
}
