package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/constants"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProductPageSize = 20
	maxProductPageSize     = 100
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager: params.TxManager,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new product in one of the user's shops.
func (srv *productService) CreateProduct(ctx context.Context, userID, shopID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	now := srv.now()
	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shopID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Currency:    normalizeCurrency(input.Currency),
		Stock:       input.Stock,
		Images:      nonNilStrings(input.Images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validateProduct(product); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := loadOwnedShop(ctx, repoFactory.ShopRepo(), userID, shopID); err != nil {
			return err
		}

		if err := repoFactory.ProductRepo().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("shopID", shopID))

	return product, nil
}

// ListShopProducts pages through a shop's products.
func (srv *productService) ListShopProducts(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultProductPageSize
	}
	limit = min(limit, maxProductPageSize)
	offset = max(offset, 0)

	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.ShopRepo().FindByID(ctx, shopID); err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to find shop")
		}

		found, err := repoFactory.ProductRepo().FindByShop(ctx, shopID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct returns a product by id.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProduct(ctx, repoFactory.ProductRepo(), productID)
		if err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProduct applies the non-nil fields of input for the shop owner. The
// product row stays locked for the rest of the transaction, and stock is only
// written when input sets it.
func (srv *productService) UpdateProduct(ctx context.Context, userID, productID uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := lockOwnedProduct(ctx, repoFactory, userID, productID)
		if err != nil {
			return err
		}

		applyProductUpdate(found, input)
		if err := validateProduct(found); err != nil {
			return err
		}
		found.UpdatedAt = srv.now()

		if err := productRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to update product")
		}

		if input.Stock != nil {
			if err := productRepo.SetStock(ctx, productID, *input.Stock); err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to set product stock")
			}
		}

		product, err = findProduct(ctx, productRepo, productID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product for the shop owner.
func (srv *productService) DeleteProduct(ctx context.Context, userID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := lockOwnedProduct(ctx, repoFactory, userID, productID); err != nil {
			return err
		}

		if err := repoFactory.ProductRepo().Delete(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// ToggleLike adds or removes userID from the product's likes.
func (srv *productService) ToggleLike(ctx context.Context, userID, productID uuid.UUID) (entity.ToggleResult, error) {
	var result entity.ToggleResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		toggled, err := repoFactory.ProductRepo().ToggleLike(ctx, productID, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to toggle product like")
		}
		result = toggled

		return nil
	})

	return result, err
}

// lockOwnedProduct takes the row lock on productID and checks that userID owns
// its shop.
func lockOwnedProduct(ctx context.Context, repoFactory repository.RepositoryFactory, userID, productID uuid.UUID) (*entity.Product, error) {
	locked, err := repoFactory.ProductRepo().FindByIDsForUpdate(ctx, []uuid.UUID{productID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock product")
	}
	if len(locked) == 0 {
		return nil, domainerrors.ErrProductNotFound
	}
	product := locked[0]

	if _, err := loadOwnedShop(ctx, repoFactory.ShopRepo(), userID, product.ShopID); err != nil {
		return nil, err
	}

	return product, nil
}

func applyProductUpdate(product *entity.Product, input usecase.UpdateProductInput) {
	if input.Title != nil {
		product.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		product.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Currency != nil {
		product.Currency = normalizeCurrency(*input.Currency)
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Images != nil {
		product.Images = input.Images
	}
}

func validateProduct(product *entity.Product) error {
	switch {
	case product.Title == "":
		return domainerrors.ErrValidationFailed.WithMessage("Product title is required")
	case product.Price.IsNegative():
		return domainerrors.ErrInvalidArgument.WithMessage("Price must not be negative")
	case product.Stock < 0:
		return domainerrors.ErrInvalidArgument.WithMessage("Stock must not be negative")
	}

	return nil
}

func normalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return constants.DefaultCurrency
	}

	return currency
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
