package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found for its recipient.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows an inbox listing.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// NotificationRepository defines the persistence operations for inbox notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser lists the recipient's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter NotificationFilter) ([]*entity.Notification, error)

	CountByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) (int64, error)

	// MarkAsRead flags one notification of userID as read.
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllAsRead flags every unread notification of userID and returns how many changed.
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes one notification of userID.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// DeleteAllByUser clears the inbox of userID.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
