package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository reads accounts owned by the auth service. The only column
// this service writes is the primary shop pointer.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SetPrimaryShop points the user at shopID. It fails with ErrShopNotFound
	// when the shop row does not exist.
	SetPrimaryShop(ctx context.Context, userID, shopID uuid.UUID) error
}
