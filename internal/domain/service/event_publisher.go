package service

import (
	"context"
)

// NotificationEvent is published after a notification is stored, so the
// push worker can deliver it to the recipient's devices.
type NotificationEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id"`
	UserID         string            `json:"user_id"` // Recipient
	Event          string            `json:"event"`   // e.g. new_order, order_approved
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Link           string            `json:"link,omitempty"`
	Data           map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
