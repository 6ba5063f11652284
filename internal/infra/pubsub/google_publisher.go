package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bazaar/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// topicPublisher publishes notification events to a Google Cloud Pub/Sub topic.
type topicPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies topicID exists before returning.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, timeout time.Duration, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	return &topicPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func (p *topicPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        msg.data,
		Attributes:  msg.attributes,
		OrderingKey: msg.orderingKey,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed publish pauses the ordering key until resumed.
		p.publisher.ResumePublish(msg.orderingKey)

		return errors.Wrapf(err, "failed to publish notification %s", msg.id)
	}

	p.logger.Debug("Event published",
		slog.String("topic", p.topic),
		slog.String("notification_id", msg.id),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *topicPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
