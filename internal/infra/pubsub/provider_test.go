package pubsub

import (
	"context"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantType service.EventPublisher
		wantErr  string
	}{
		{name: "not configured", wantType: &disabledPublisher{}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantType: &disabledPublisher{}},
		{
			name:     "local",
			pubsub:   &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push", PublishTimeout: time.Second},
			wantType: &localPushPublisher{},
		},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

func TestDisabledPublisher_DropsEvents(t *testing.T) {
	publisher := &disabledPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: "n-1"}))
	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), nil))
}
