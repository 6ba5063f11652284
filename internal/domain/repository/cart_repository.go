// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartNotFound is returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the persistence operations for carts.
type CartRepository interface {
	// FindByUserID loads the user's cart with its lines.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByUserIDForUpdate loads the cart and locks its row until the surrounding transaction ends.
	FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save creates the cart if needed and replaces its lines.
	Save(ctx context.Context, cart *entity.Cart) error
}
