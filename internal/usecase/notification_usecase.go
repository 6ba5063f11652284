package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationQuery narrows an inbox listing.
type NotificationQuery struct {
	UnreadOnly bool
	Page       int
	Limit      int
}

// NotificationPage is one page of a user's inbox.
type NotificationPage struct {
	Items       []*entity.Notification `json:"items"`
	Total       int64                  `json:"total"`
	UnreadCount int64                  `json:"unread_count"`
	Page        int                    `json:"page"`
	Limit       int                    `json:"limit"`
}

// NotificationUsecase defines the inbox use cases.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, query NotificationQuery) (*NotificationPage, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
	ClearNotifications(ctx context.Context, userID uuid.UUID) (int64, error)
}
