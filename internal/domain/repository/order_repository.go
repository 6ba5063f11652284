package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the persistence operations for orders.
type OrderRepository interface {
	// Create stores the order together with its line snapshots.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the order and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByBuyer lists a buyer's orders, newest first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error)

	// FindByShop lists a shop's orders, newest first.
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus persists status, decline reason and updated time.
	UpdateStatus(ctx context.Context, order *entity.Order) error

	Delete(ctx context.Context, id uuid.UUID) error
}
