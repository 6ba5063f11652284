package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service usecase.ProductUsecase
	store   *memStore
	ownerID uuid.UUID
	shop    *entity.Shop
}

func createTestProductService(t *testing.T) productServiceFixtures {
	t.Helper()

	store := newMemStore()
	ownerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: ownerID, Title: "Stall", UniqueID: "stall", IsActive: true}
	store.putShop(shop)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			TxManager: store,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		store:   store,
		ownerID: ownerID,
		shop:    shop,
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	f := createTestProductService(t)

	product, err := f.service.CreateProduct(context.Background(), f.ownerID, f.shop.ID, usecase.CreateProductInput{
		Title:    " Honey jar ",
		Price:    decimal.RequireFromString("4.25"),
		Currency: "eur",
		Stock:    12,
	})

	require.NoError(t, err)
	assert.Equal(t, "Honey jar", product.Title)
	assert.Equal(t, "EUR", product.Currency)
	assert.Equal(t, []string{}, product.Images)
	assert.Equal(t, f.shop.ID, product.ShopID)
	assert.Equal(t, 12, f.store.product(product.ID).Stock)
}

func TestProductService_CreateProduct_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		userID  func(f productServiceFixtures) uuid.UUID
		shopID  func(f productServiceFixtures) uuid.UUID
		input   usecase.CreateProductInput
		wantErr error
	}{
		{
			name:    "missing title",
			input:   usecase.CreateProductInput{Price: decimal.NewFromInt(1), Stock: 1},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative price",
			input:   usecase.CreateProductInput{Title: "Bad", Price: decimal.NewFromInt(-1)},
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:    "negative stock",
			input:   usecase.CreateProductInput{Title: "Bad", Stock: -2},
			wantErr: domainerrors.ErrInvalidArgument,
		},
		{
			name:    "not the owner",
			userID:  func(productServiceFixtures) uuid.UUID { return uuid.New() },
			input:   usecase.CreateProductInput{Title: "Fine"},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "unknown shop",
			shopID:  func(productServiceFixtures) uuid.UUID { return uuid.New() },
			input:   usecase.CreateProductInput{Title: "Fine"},
			wantErr: domainerrors.ErrShopNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProductService(t)
			userID, shopID := f.ownerID, f.shop.ID
			if tt.userID != nil {
				userID = tt.userID(f)
			}
			if tt.shopID != nil {
				shopID = tt.shopID(f)
			}

			_, err := f.service.CreateProduct(context.Background(), userID, shopID, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_ListShopProducts(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	for range 3 {
		_, err := f.service.CreateProduct(ctx, f.ownerID, f.shop.ID, usecase.CreateProductInput{Title: "Item", Stock: 1})
		require.NoError(t, err)
	}

	all, err := f.service.ListShopProducts(ctx, f.shop.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := f.service.ListShopProducts(ctx, f.shop.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	_, err = f.service.ListShopProducts(ctx, uuid.New(), 10, 0)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestProductService_UpdateAndDelete(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	product, err := f.service.CreateProduct(ctx, f.ownerID, f.shop.ID, usecase.CreateProductInput{Title: "Bread", Stock: 2})
	require.NoError(t, err)

	stock := 9
	price := decimal.RequireFromString("2.50")
	updated, err := f.service.UpdateProduct(ctx, f.ownerID, product.ID, usecase.UpdateProductInput{Stock: &stock, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, "2.50", updated.Price.StringFixed(2))

	negative := -1
	_, err = f.service.UpdateProduct(ctx, f.ownerID, product.ID, usecase.UpdateProductInput{Stock: &negative})
	require.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
	assert.Equal(t, 9, f.store.product(product.ID).Stock)

	assert.ErrorIs(t, f.service.DeleteProduct(ctx, uuid.New(), product.ID), domainerrors.ErrForbidden)
	require.NoError(t, f.service.DeleteProduct(ctx, f.ownerID, product.ID))

	_, err = f.service.GetProduct(ctx, product.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

// interleavingTx runs a checkout-sized decrement inside the transaction just
// before the product row is rewritten.
type interleavingTx struct {
	store    *memStore
	quantity int
}

func (tx interleavingTx) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return tx.store.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return fn(interleavingFactory{RepositoryFactory: repoFactory, quantity: tx.quantity})
	})
}

type interleavingFactory struct {
	repository.RepositoryFactory
	quantity int
}

func (f interleavingFactory) ProductRepo() repository.ProductRepository {
	return interleavingProductRepo{ProductRepository: f.RepositoryFactory.ProductRepo(), quantity: f.quantity}
}

type interleavingProductRepo struct {
	repository.ProductRepository
	quantity int
}

func (r interleavingProductRepo) Update(ctx context.Context, product *entity.Product) error {
	if err := r.ProductRepository.DecrementStock(ctx, product.ID, r.quantity); err != nil {
		return err
	}

	return r.ProductRepository.Update(ctx, product)
}

func TestProductService_UpdateKeepsConcurrentStockDecrement(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	product, err := f.service.CreateProduct(ctx, f.ownerID, f.shop.ID, usecase.CreateProductInput{Title: "Bread", Stock: 5})
	require.NoError(t, err)

	service := NewProductService(ProductServiceParams{
		TxManager: interleavingTx{store: f.store, quantity: 2},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	title := "Sourdough"
	updated, err := service.UpdateProduct(ctx, f.ownerID, product.ID, usecase.UpdateProductInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Sourdough", updated.Title)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, 3, f.store.product(product.ID).Stock)
}

func TestProductService_UpdateLocksProductRow(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: ownerID, Title: "Stall", UniqueID: "stall", IsActive: true}
	product := &entity.Product{ID: uuid.New(), ShopID: shop.ID, Title: "Bread", Stock: 4, Currency: "USD"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ShopRepo().Return(shopRepo)
	productRepo.EXPECT().FindByIDsForUpdate(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	productRepo.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == product.ID && p.Title == "Rye"
	})).Return(nil)
	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	service := NewProductService(ProductServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	title := "Rye"
	_, err := service.UpdateProduct(ctx, ownerID, product.ID, usecase.UpdateProductInput{Title: &title})
	require.NoError(t, err)
	productRepo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	tests := []struct {
		name    string
		repoErr error
		result  entity.ToggleResult
		wantErr error
	}{
		{name: "liked", result: entity.ToggleResult{Active: true, Count: 4}},
		{name: "unknown product", repoErr: repository.ErrProductNotFound, wantErr: domainerrors.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txManager := mockRepo.NewMockTransactionManager(t)
			factory := mockRepo.NewMockRepositoryFactory(t)
			productRepo := mockRepo.NewMockProductRepository(t)

			txManager.EXPECT().
				Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
				RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
					return fn(factory)
				})
			factory.EXPECT().ProductRepo().Return(productRepo)
			productRepo.EXPECT().ToggleLike(ctx, productID, userID).Return(tt.result, tt.repoErr)

			service := NewProductService(ProductServiceParams{
				TxManager: txManager,
				Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			})

			result, err := service.ToggleLike(ctx, userID, productID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}
