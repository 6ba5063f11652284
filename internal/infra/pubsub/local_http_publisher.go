package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/bazaar-notifications-push"

	// errorBodyLimit caps how much of a failed worker response ends up in the error.
	errorBodyLimit = 512
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to their endpoint.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is the message part of a PushEnvelope.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localPushPublisher posts events straight to the push worker, standing in
// for a Pub/Sub push subscription during development.
type localPushPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocalHTTPPublisher returns a publisher that delivers to endpoint synchronously.
func NewLocalHTTPPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	return &localPushPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localPushPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushEnvelope{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   msg.id,
			PublishTime: p.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to reach push endpoint %s", p.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

		return errors.Errorf("worker returned non-success status: %d %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}

	p.logger.Debug("Event pushed to local worker",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", msg.id),
		slog.String("event", event.Event),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (p *localPushPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
