// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// User is the read model of an account managed by the external auth service.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	PrimaryShopID *uuid.UUID `json:"primary_shop_id,omitempty"` // The shop surfaced by default for this user.
}
