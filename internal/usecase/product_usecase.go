package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries the fields of a new product.
type CreateProductInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Currency    string
	Stock       int
	Images      []string
}

// UpdateProductInput carries optional product edits; nil fields are left unchanged.
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Currency    *string
	Stock       *int
	Images      []string
}

// ProductUsecase defines product management use cases. Mutations are limited
// to the owner of the product's shop.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, userID, shopID uuid.UUID, input CreateProductInput) (*entity.Product, error)
	ListShopProducts(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error
	ToggleLike(ctx context.Context, userID, productID uuid.UUID) (entity.ToggleResult, error)
}
