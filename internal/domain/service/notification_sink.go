package service

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationInput is what a flow wants to tell a user.
type NotificationInput struct {
	Type    entity.NotificationType
	Event   string // Real-time event name
	Content string
	Link    string
	Data    map[string]string
}

// NotificationSink is the best-effort delivery boundary used by order flows.
// Callers treat both methods as fire-and-forget: errors are for logging only.
type NotificationSink interface {
	// Notify persists an inbox entry for targetUserID and pushes it in real time.
	Notify(ctx context.Context, targetUserID uuid.UUID, input NotificationInput) error

	// SendEmail sends a plain-text email.
	SendEmail(ctx context.Context, address, subject, body string) error
}
