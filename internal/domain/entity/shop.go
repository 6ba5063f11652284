package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shop is a storefront owned by one user.
type Shop struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Phone           string    `json:"phone"`            // Target of the checkout deep-link.
	MessageTemplate string    `json:"message_template"` // Rendered into the merchant-facing order message.
	UniqueID        string    `json:"unique_id"`        // Globally unique public handle.
	IsActive        bool      `json:"is_active"`
	IsVerified      bool      `json:"is_verified"`
	Shares          int       `json:"shares"`
	FollowerCount   int       `json:"follower_count"`
	LikeCount       int       `json:"like_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID owns the shop.
func (s *Shop) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

// ToggleResult is the outcome of a set-membership toggle (follow, like).
type ToggleResult struct {
	Active bool `json:"active"` // True when the caller is now in the set.
	Count  int  `json:"count"`
}
