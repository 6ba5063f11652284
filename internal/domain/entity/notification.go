package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies an inbox entry.
type NotificationType string

const (
	NotificationTypeOrder         NotificationType = "order"
	NotificationTypeOrderApproved NotificationType = "order_approved"
	NotificationTypeOrderDeclined NotificationType = "order_declined"
	NotificationTypeReview        NotificationType = "review"
	NotificationTypeMessage       NotificationType = "message"
	NotificationTypeApproval      NotificationType = "approval"
)

// Notification is a persisted inbox entry for one user.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"` // Recipient.
	Type      NotificationType `json:"type"`
	Content   string           `json:"content"`
	Link      string           `json:"link"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
