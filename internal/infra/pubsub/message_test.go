package pubsub

import (
	"encoding/json"
	"testing"

	"bazaar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     *service.NotificationEvent
		wantAttrs map[string]string
		wantErr   string
	}{
		{
			name:  "with request id",
			event: &service.NotificationEvent{RequestID: "req-1", NotificationID: "n-1", UserID: "u-1", Event: "new_order"},
			wantAttrs: map[string]string{
				"notification_id": "n-1",
				"user_id":         "u-1",
				"event":           "new_order",
				"request_id":      "req-1",
			},
		},
		{
			name:  "request id omitted when empty",
			event: &service.NotificationEvent{NotificationID: "n-2", UserID: "u-1", Event: "order_approved"},
			wantAttrs: map[string]string{
				"notification_id": "n-2",
				"user_id":         "u-1",
				"event":           "order_approved",
			},
		},
		{name: "nil event", wantErr: "nil notification event"},
		{name: "missing recipient", event: &service.NotificationEvent{NotificationID: "n-3"}, wantErr: "missing ids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := encodeEvent(tt.event)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAttrs, msg.attributes)
			assert.Equal(t, tt.event.NotificationID, msg.id)
			assert.Equal(t, tt.event.UserID, msg.orderingKey)

			var decoded service.NotificationEvent
			require.NoError(t, json.Unmarshal(msg.data, &decoded))
			assert.Equal(t, *tt.event, decoded)
		})
	}
}
