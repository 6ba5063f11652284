package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrStockConflict is returned when a conditional stock decrement matches no row.
	ErrStockConflict = errors.New("stock changed concurrently")
)

// ProductRepository defines the persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDsForUpdate locks the given products in ascending id order.
	// Missing ids are absent from the result.
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	FindByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Product, error)

	// Update writes every editable field except stock.
	Update(ctx context.Context, product *entity.Product) error

	SetStock(ctx context.Context, id uuid.UUID, stock int) error

	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock subtracts quantity only while stock >= quantity.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error

	// ToggleLike adds userID to the product's likes, or removes it when present.
	ToggleLike(ctx context.Context, productID, userID uuid.UUID) (entity.ToggleResult, error)
}
