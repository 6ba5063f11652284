package pubsub

import (
	"encoding/json"

	"bazaar/internal/domain/service"

	"github.com/pkg/errors"
)

// Attribute keys carried on every published message.
const (
	attrNotificationID = "notification_id"
	attrUserID         = "user_id"
	attrEvent          = "event"
	attrRequestID      = "request_id"
)

// outboundMessage is a provider-neutral rendering of a notification event.
type outboundMessage struct {
	id          string
	data        []byte
	attributes  map[string]string
	orderingKey string
}

func encodeEvent(event *service.NotificationEvent) (*outboundMessage, error) {
	if event == nil {
		return nil, errors.New("nil notification event")
	}
	if event.NotificationID == "" || event.UserID == "" {
		return nil, errors.Errorf("notification event is missing ids (notification=%q user=%q)",
			event.NotificationID, event.UserID)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode notification event")
	}

	attrs := map[string]string{
		attrNotificationID: event.NotificationID,
		attrUserID:         event.UserID,
		attrEvent:          event.Event,
	}
	if event.RequestID != "" {
		attrs[attrRequestID] = event.RequestID
	}

	// One recipient's events stay in publish order.
	return &outboundMessage{
		id:          event.NotificationID,
		data:        data,
		attributes:  attrs,
		orderingKey: event.UserID,
	}, nil
}
