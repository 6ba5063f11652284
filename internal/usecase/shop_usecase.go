package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShopInput carries the fields of a new shop. An empty UniqueID is
// derived from the title; an empty MessageTemplate uses the default.
type CreateShopInput struct {
	Title           string
	Description     string
	Category        string
	Tags            []string
	Phone           string
	MessageTemplate string
	UniqueID        string
}

// UpdateShopInput carries optional shop edits; nil fields are left unchanged.
type UpdateShopInput struct {
	Title           *string
	Description     *string
	Category        *string
	Tags            []string
	Phone           *string
	MessageTemplate *string
}

// ShopUsecase defines shop management use cases.
type ShopUsecase interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, input CreateShopInput) (*entity.Shop, error)
	// GetShop resolves ref as a shop id first, then as a unique id. Inactive shops are not found.
	GetShop(ctx context.Context, ref string) (*entity.Shop, error)
	ListMyShops(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error)
	UpdateShop(ctx context.Context, userID, shopID uuid.UUID, input UpdateShopInput) (*entity.Shop, error)
	DeactivateShop(ctx context.Context, userID, shopID uuid.UUID) error
	SetPrimaryShop(ctx context.Context, userID, shopID uuid.UUID) error
	ToggleFollow(ctx context.Context, userID, shopID uuid.UUID) (entity.ToggleResult, error)
	ToggleLike(ctx context.Context, userID, shopID uuid.UUID) (entity.ToggleResult, error)
	// Share records a share and returns the new share count.
	Share(ctx context.Context, shopID uuid.UUID) (int, error)
	GenerateShopQR(ctx context.Context, shopID uuid.UUID) ([]byte, error)
}
