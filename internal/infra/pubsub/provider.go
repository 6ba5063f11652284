package pubsub

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// disabledPublisher drops events when no provider is configured.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p *disabledPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	if event != nil {
		p.logger.DebugContext(ctx, "Event publishing disabled, dropping event",
			slog.String("notification_id", event.NotificationID),
			slog.String("event", event.Event),
		)
	}

	return nil
}

func (p *disabledPublisher) Close() error {
	return nil
}

type publisherFactory func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error)

//nolint:gochecknoglobals
var publisherFactories = map[string]publisherFactory{
	constants.PubSubProviderLocal: func(_ context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, cfg.PublishTimeout, logger), nil
	},
	constants.PubSubProviderGoogle: func(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("project ID is required for google provider")
		case cfg.TopicID == "":
			return nil, errors.New("topic ID is required for google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, cfg.PublishTimeout, logger)
	},
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher for the configured provider.
// An unset provider yields a publisher that drops every event.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "event_publisher"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("No pubsub provider configured, notification events will not be pushed")

		return &disabledPublisher{logger: logger}, nil
	}

	factory, ok := publisherFactories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := factory(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return publisher.Close()
			},
		})
	}

	return publisher, nil
}
