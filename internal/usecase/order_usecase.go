package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitOrderOutput is the result of a checkout. Link is nil when the shop's
// message template could not be rendered.
type SubmitOrderOutput struct {
	Order *entity.Order `json:"order"`
	Link  *string       `json:"link"`
}

// OrderUsecase defines checkout and the order lifecycle.
type OrderUsecase interface {
	// SubmitOrder turns the user's cart lines for shopID into a pending order.
	SubmitOrder(ctx context.Context, userID, shopID uuid.UUID) (*SubmitOrderOutput, error)

	// ListMyOrders lists the orders placed by userID.
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListShopOrders lists a shop's orders; only the owner may call it.
	ListShopOrders(ctx context.Context, userID, shopID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns an order to its buyer or the shop owner.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ApproveOrder and DeclineOrder move a pending order to a terminal state.
	ApproveOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	DeclineOrder(ctx context.Context, userID, orderID uuid.UUID, reason string) (*entity.Order, error)

	// DeleteOrder removes an order in any state; buyer or owner only.
	DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error
}
