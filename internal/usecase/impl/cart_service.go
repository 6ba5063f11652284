package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart. A user without a cart gets an empty one.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.CartRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrCartNotFound) {
				cart = entity.NewCart(userID)

				return nil
			}

			return errors.Wrap(err, "failed to find cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return newCartView(cart), nil
}

// AddItem adds a product to the cart, merging with an existing line.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input usecase.AddCartItemInput) (*usecase.CartView, error) {
	srv.log(ctx).Debug("Adding cart item",
		slog.Any("userID", userID),
		slog.Any("productID", input.ProductID),
		slog.Int("quantity", input.Quantity),
	)

	return srv.mutate(ctx, userID, func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		product, err := findProduct(ctx, repoFactory.ProductRepo(), input.ProductID)
		if err != nil {
			return err
		}

		if input.ShopID != nil && *input.ShopID != product.ShopID {
			return domainerrors.ErrInvalidArgument.WithMessage("Product does not belong to this shop")
		}

		requested := input.Quantity
		if line, ok := cart.Line(product.ID); ok {
			requested += line.Quantity
		}

		return translateCartError(cart.AddLine(product.ShopID, product, input.Quantity, srv.now()), product, requested)
	})
}

// UpdateQuantity sets the quantity of a product already in the cart.
func (srv *cartService) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) (*usecase.CartView, error) {
	return srv.mutate(ctx, userID, func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		if _, ok := cart.Line(productID); !ok {
			return domainerrors.ErrCartItemNotFound
		}

		product, err := findProduct(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}

		return translateCartError(cart.UpdateQuantity(product, quantity, srv.now()), product, quantity)
	})
}

// RemoveItem drops a product from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*usecase.CartView, error) {
	return srv.mutate(ctx, userID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		return translateCartError(cart.RemoveLine(productID, srv.now()), nil, 0)
	})
}

// Clear empties the cart. Clearing an empty cart succeeds.
func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	return srv.mutate(ctx, userID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.Clear(srv.now())

		return nil
	})
}

// mutate loads the cart under a row lock, applies change and saves the result
// in the same transaction. Nothing is saved when change fails.
func (srv *cartService) mutate(
	ctx context.Context,
	userID uuid.UUID,
	change func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error,
) (*usecase.CartView, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		found, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrCartNotFound):
			found = entity.NewCart(userID)
		case err != nil:
			return errors.Wrap(err, "failed to lock cart")
		}

		if err := change(repoFactory, found); err != nil {
			return err
		}

		if err := cartRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Cart update rejected", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return newCartView(cart), nil
}

func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(map[string]string{"product_id": productID.String()})
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// translateCartError maps cart aggregate errors to API errors.
func translateCartError(err error, product *entity.Product, requested int) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrInvalidQuantity):
		return domainerrors.ErrInvalidArgument.WithMessage("Quantity must be at least 1")
	case errors.Is(err, entity.ErrNotEnoughStock):
		return domainerrors.NewInsufficientStockError(domainerrors.StockShortage{
			ProductID: product.ID.String(),
			Title:     product.Title,
			Requested: requested,
			Available: product.Stock,
		})
	case errors.Is(err, entity.ErrLineNotFound):
		return domainerrors.ErrCartItemNotFound
	case errors.Is(err, entity.ErrShopMismatch):
		return domainerrors.ErrInvalidArgument.WithMessage("Product does not belong to this shop")
	}

	return err
}

func newCartView(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Cart:   cart,
		Groups: cart.GroupByShop(),
	}
}
