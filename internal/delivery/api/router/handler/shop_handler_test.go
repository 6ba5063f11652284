package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestShopHandler(t *testing.T) (*ShopHandler, *mockUsecase.MockShopUsecase) {
	shopUC := mockUsecase.NewMockShopUsecase(t)

	return NewShopHandler(ShopHandlerParams{
		ShopUC: shopUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), shopUC
}

func TestShopHandler_CreateShop(t *testing.T) {
	ownerID := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, shopUC := createTestShopHandler(t)
		shop := &entity.Shop{ID: uuid.New(), OwnerID: ownerID, Title: "Corner Deli", UniqueID: "corner-deli"}
		shopUC.EXPECT().CreateShop(mock.Anything, ownerID, usecase.CreateShopInput{
			Title: "Corner Deli",
			Tags:  []string{"food"},
			Phone: "+1 555 0100",
		}).Return(shop, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/shops",
			body:   `{"title":"Corner Deli","tags":["food"],"phone":"+1 555 0100"}`,
			userID: ownerID,
		})

		require.NoError(t, h.CreateShop(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		h, _ := createTestShopHandler(t)
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/shops",
			body:   `{"description":"no title"}`,
			userID: ownerID,
		})

		require.NoError(t, h.CreateShop(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"title": "required", "phone": "required"}, decodeError(t, rec).Details)
	})
}

func TestShopHandler_GetShop_PassesReference(t *testing.T) {
	h, shopUC := createTestShopHandler(t)
	shopUC.EXPECT().GetShop(mock.Anything, "corner-deli").Return(nil, domainerrors.ErrShopNotFound)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/v1/shops/corner-deli",
		userID: uuid.New(),
		params: map[string]string{"id": "corner-deli"},
	})

	require.NoError(t, h.GetShop(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SHOP_NOT_FOUND", decodeError(t, rec).Code)
}

func TestShopHandler_SetPrimaryShop(t *testing.T) {
	userID := uuid.New()
	shopID := uuid.New()

	t.Run("updated", func(t *testing.T) {
		h, shopUC := createTestShopHandler(t)
		shopUC.EXPECT().SetPrimaryShop(mock.Anything, userID, shopID).Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			target: "/api/v1/shops/primary",
			body:   `{"shop_id":"` + shopID.String() + `"}`,
			userID: userID,
		})

		require.NoError(t, h.SetPrimaryShop(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not a uuid", func(t *testing.T) {
		h, _ := createTestShopHandler(t)
		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			target: "/api/v1/shops/primary",
			body:   `{"shop_id":"abc"}`,
			userID: userID,
		})

		require.NoError(t, h.SetPrimaryShop(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"shop_id": "uuid"}, decodeError(t, rec).Details)
	})

	t.Run("not the owner", func(t *testing.T) {
		h, shopUC := createTestShopHandler(t)
		shopUC.EXPECT().SetPrimaryShop(mock.Anything, userID, shopID).Return(domainerrors.ErrForbidden)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			target: "/api/v1/shops/primary",
			body:   `{"shop_id":"` + shopID.String() + `"}`,
			userID: userID,
		})

		require.NoError(t, h.SetPrimaryShop(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestShopHandler_ToggleFollow(t *testing.T) {
	h, shopUC := createTestShopHandler(t)
	userID := uuid.New()
	shopID := uuid.New()
	shopUC.EXPECT().ToggleFollow(mock.Anything, userID, shopID).Return(entity.ToggleResult{Active: true, Count: 4}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/v1/shops/" + shopID.String() + "/follow",
		userID: userID,
		params: map[string]string{"id": shopID.String()},
	})

	require.NoError(t, h.ToggleFollow(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.ToggleResult
	decodeData(t, rec, &got)
	assert.Equal(t, entity.ToggleResult{Active: true, Count: 4}, got)
}

func TestShopHandler_GenerateShopQR(t *testing.T) {
	h, shopUC := createTestShopHandler(t)
	shopID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	shopUC.EXPECT().GenerateShopQR(mock.Anything, shopID).Return(png, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/v1/shops/" + shopID.String() + "/qr",
		userID: uuid.New(),
		params: map[string]string{"id": shopID.String()},
	})

	require.NoError(t, h.GenerateShopQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
