package impl

import (
	"context"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accessGuard implements service.AccessGuard on top of the shop and order repositories.
type accessGuard struct {
	shopRepo  repository.ShopRepository
	orderRepo repository.OrderRepository
}

// AccessGuardParams holds dependencies for the access guard, injected by Fx.
type AccessGuardParams struct {
	fx.In

	ShopRepo  repository.ShopRepository
	OrderRepo repository.OrderRepository
}

// NewAccessGuard is the constructor for accessGuard.
func NewAccessGuard(params AccessGuardParams) service.AccessGuard {
	return &accessGuard{
		shopRepo:  params.ShopRepo,
		orderRepo: params.OrderRepo,
	}
}

// ResolveShopOwnership reports whether userID owns shopID.
func (g *accessGuard) ResolveShopOwnership(ctx context.Context, shopID, userID uuid.UUID) (bool, error) {
	shop, err := g.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return false, domainerrors.ErrShopNotFound
		}

		return false, errors.Wrap(err, "failed to load shop for ownership check")
	}

	return shop.IsOwnedBy(userID), nil
}

// ResolveOrderParticipant reports how userID relates to orderID. A shop that
// no longer exists has no owner.
func (g *accessGuard) ResolveOrderParticipant(ctx context.Context, orderID, userID uuid.UUID) (service.Participant, error) {
	order, err := g.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return service.Participant{}, domainerrors.ErrOrderNotFound
		}

		return service.Participant{}, errors.Wrap(err, "failed to load order for access check")
	}

	participant := service.Participant{IsBuyer: order.BuyerID == userID}

	shop, err := g.shopRepo.FindByID(ctx, order.ShopID)
	switch {
	case err == nil:
		participant.IsOwner = shop.IsOwnedBy(userID)
	case !errors.Is(err, repository.ErrShopNotFound):
		return service.Participant{}, errors.Wrap(err, "failed to load order shop for access check")
	}

	return participant, nil
}
