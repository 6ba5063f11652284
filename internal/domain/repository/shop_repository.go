package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for shop persistence.
var (
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrUniqueIDTaken is returned when a shop's unique id collides with another shop.
	ErrUniqueIDTaken = errors.New("shop unique id already taken")
)

// ShopRepository defines the persistence operations for shops.
type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	FindByUniqueID(ctx context.Context, uniqueID string) (*entity.Shop, error)

	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)

	ExistsUniqueID(ctx context.Context, uniqueID string) (bool, error)

	Update(ctx context.Context, shop *entity.Shop) error

	// IncrementShares bumps the share counter and returns the new value.
	IncrementShares(ctx context.Context, id uuid.UUID) (int, error)

	// ToggleFollower adds or removes userID from the shop's followers.
	ToggleFollower(ctx context.Context, shopID, userID uuid.UUID) (entity.ToggleResult, error)

	// ToggleLike adds or removes userID from the shop's likes.
	ToggleLike(ctx context.Context, shopID, userID uuid.UUID) (entity.ToggleResult, error)
}
