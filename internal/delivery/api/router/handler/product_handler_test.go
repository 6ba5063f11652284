package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{
		ProductUC: productUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), productUC
}

func TestProductHandler_CreateProduct(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("price given as string", func(t *testing.T) {
		h, productUC := createTestProductHandler(t)
		productUC.EXPECT().
			CreateProduct(mock.Anything, userID, shopID, mock.MatchedBy(func(input usecase.CreateProductInput) bool {
				return input.Title == "Widget" &&
					input.Price.Equal(decimal.RequireFromString("10.50")) &&
					input.Currency == "usd" &&
					input.Stock == 3
			})).
			Return(&entity.Product{ID: uuid.New(), ShopID: shopID}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/products/shops/" + shopID.String(),
			body:   `{"title":"Widget","price":"10.50","currency":"usd","stock":3}`,
			userID: userID,
			params: map[string]string{"shopId": shopID.String()},
		})

		require.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("bad currency code", func(t *testing.T) {
		h, _ := createTestProductHandler(t)
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/products/shops/" + shopID.String(),
			body:   `{"title":"Widget","price":1,"currency":"dollars"}`,
			userID: userID,
			params: map[string]string{"shopId": shopID.String()},
		})

		require.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"currency": "currency"}, decodeError(t, rec).Details)
	})
}

func TestProductHandler_ListShopProducts(t *testing.T) {
	shopID := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantStatus int
	}{
		{name: "defaults", query: "", wantLimit: 20, wantOffset: 0, wantStatus: http.StatusOK},
		{name: "limit capped", query: "?limit=1000&offset=40", wantLimit: 100, wantOffset: 40, wantStatus: http.StatusOK},
		{name: "zero limit", query: "?limit=0", wantStatus: http.StatusBadRequest},
		{name: "negative offset", query: "?offset=-1", wantStatus: http.StatusBadRequest},
		{name: "non numeric", query: "?limit=ten", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, productUC := createTestProductHandler(t)
			if tt.wantStatus == http.StatusOK {
				productUC.EXPECT().ListShopProducts(mock.Anything, shopID, tt.wantLimit, tt.wantOffset).Return([]*entity.Product{}, nil)
			}

			c, rec := newTestContext(testRequest{
				method: http.MethodGet,
				target: "/api/v1/products/shops/" + shopID.String() + tt.query,
				userID: uuid.New(),
				params: map[string]string{"shopId": shopID.String()},
			})

			require.NoError(t, h.ListShopProducts(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
