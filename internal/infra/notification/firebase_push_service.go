package notification

import (
	"context"
	"log/slog"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicaster is the part of *messaging.Client the push service needs.
type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type fcmPushService struct {
	client multicaster
	logger *slog.Logger
}

// PushServiceParams holds dependencies for the FCM push service, injected by Fx
type PushServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFirebasePushService builds an FCM client from the configured credentials
// file, falling back to application default credentials.
func NewFirebasePushService(params PushServiceParams) (service.PushService, error) {
	var (
		opts  []option.ClientOption
		appCf *firebase.Config
	)
	if cfg := params.Config.Firebase; cfg != nil {
		if cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
		}
		if cfg.ProjectID != "" {
			appCf = &firebase.Config{ProjectID: cfg.ProjectID}
		}
	}

	app, err := firebase.NewApp(params.Ctx, appCf, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmPushService{client: client, logger: params.Logger}, nil
}

func (s *fcmPushService) Multicast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushReport, error) {
	report := &service.PushReport{}
	if len(tokens) == 0 {
		return report, nil
	}
	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	resp, err := s.client.SendEachForMulticast(ctx, buildMulticast(tokens, msg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	report.Sent = resp.SuccessCount
	report.Failed = resp.FailureCount

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	for i, r := range resp.Responses {
		switch {
		case r.Error == nil:
		case messaging.IsUnregistered(r.Error), messaging.IsInvalidArgument(r.Error):
			report.InvalidTokens = append(report.InvalidTokens, tokens[i])
		default:
			logger.Warn("FCM delivery failed", slog.Int("index", i), slog.Any("error", r.Error))
		}
	}

	return report, nil
}

// buildMulticast marks pushes high priority so order updates wake the device.
func buildMulticast(tokens []string, msg service.PushMessage) *messaging.MulticastMessage {
	return &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
