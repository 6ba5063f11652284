package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is a cart together with its lines grouped by shop for display.
type CartView struct {
	Cart   *entity.Cart           `json:"cart"`
	Groups []entity.CartShopGroup `json:"groups"`
}

// AddCartItemInput describes a product added to the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	// ShopID is optional; when set it must match the product's shop.
	ShopID   *uuid.UUID
	Quantity int
}

// CartUsecase defines the shopping cart use cases. Every mutation returns the
// resulting cart view.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
	AddItem(ctx context.Context, userID uuid.UUID, input AddCartItemInput) (*CartView, error)
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*CartView, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) (*CartView, error)
}
