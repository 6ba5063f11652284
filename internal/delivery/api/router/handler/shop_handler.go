package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler serves shop management and social actions.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShopRequest represents the request body for creating a shop.
type CreateShopRequest struct {
	Title           string   `json:"title" validate:"required,max=120"`
	Description     string   `json:"description" validate:"max=2000"`
	Category        string   `json:"category" validate:"max=60"`
	Tags            []string `json:"tags" validate:"max=20,dive,max=40"`
	Phone           string   `json:"phone" validate:"required,max=32"`
	MessageTemplate string   `json:"message_template" validate:"max=4000"`
	UniqueID        string   `json:"unique_id" validate:"omitempty,max=60"`
}

// UpdateShopRequest represents the request body for editing a shop.
type UpdateShopRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Description     *string  `json:"description" validate:"omitempty,max=2000"`
	Category        *string  `json:"category" validate:"omitempty,max=60"`
	Tags            []string `json:"tags" validate:"omitempty,max=20,dive,max=40"`
	Phone           *string  `json:"phone" validate:"omitempty,min=1,max=32"`
	MessageTemplate *string  `json:"message_template" validate:"omitempty,max=4000"`
}

// SetPrimaryShopRequest represents the request body for choosing the primary shop.
type SetPrimaryShopRequest struct {
	ShopID string `json:"shop_id" validate:"required,uuid"`
}

// CreateShop creates a shop owned by the caller.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req CreateShopRequest
	if ok, err := bindAndValidate(c, &req, "shop"); !ok {
		return err
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), userID, usecase.CreateShopInput{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Tags:            req.Tags,
		Phone:           req.Phone,
		MessageTemplate: req.MessageTemplate,
		UniqueID:        req.UniqueID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shop)
}

// ListMyShops lists the caller's shops.
func (h *ShopHandler) ListMyShops(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shops, err := h.shopUC.ListMyShops(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shops)
}

// GetShop resolves a shop by id or unique id.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// UpdateShop edits a shop owned by the caller.
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	var req UpdateShopRequest
	if ok, err := bindAndValidate(c, &req, "shop"); !ok {
		return err
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), userID, shopID, usecase.UpdateShopInput{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Tags:            req.Tags,
		Phone:           req.Phone,
		MessageTemplate: req.MessageTemplate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shop)
}

// DeactivateShop hides a shop owned by the caller.
func (h *ShopHandler) DeactivateShop(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	if err := h.shopUC.DeactivateShop(c.Request().Context(), userID, shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Shop deactivated successfully"})
}

// SetPrimaryShop marks one of the caller's shops as primary.
func (h *ShopHandler) SetPrimaryShop(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req SetPrimaryShopRequest
	if ok, err := bindAndValidate(c, &req, "primary shop"); !ok {
		return err
	}

	shopID, ok, err := parseUUIDField(c, req.ShopID, "shop")
	if !ok {
		return err
	}

	if err := h.shopUC.SetPrimaryShop(c.Request().Context(), userID, shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Primary shop updated successfully"})
}

// ToggleFollow follows or unfollows a shop.
func (h *ShopHandler) ToggleFollow(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "id", "shop")
	if !ok {
		return err
	}

	result, err := h.shopUC.ToggleFollow(c.Request().Context(), userID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ToggleLike likes or unlikes a shop.
func (h *ShopHandler) ToggleLike(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "id", "shop")
	if !ok {
		return err
	}

	result, err := h.shopUC.ToggleLike(c.Request().Context(), userID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Share records a share of the shop.
func (h *ShopHandler) Share(c echo.Context) error {
	shopID, ok, err := pathUUID(c, "id", "shop")
	if !ok {
		return err
	}

	shares, err := h.shopUC.Share(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"shares": shares})
}

// GenerateShopQR returns a PNG QR code pointing at the shop.
func (h *ShopHandler) GenerateShopQR(c echo.Context) error {
	shopID, ok, err := pathUUID(c, "id", "shop")
	if !ok {
		return err
	}

	png, err := h.shopUC.GenerateShopQR(c.Request().Context(), shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
