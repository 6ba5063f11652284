package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the caller's shopping cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	ShopID    *uuid.UUID `json:"shop_id"`
	Quantity  int        `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest represents the request body for changing a line quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// GetCart returns the caller's cart grouped by shop.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	view, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AddItem adds a product to the cart, merging with an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req AddCartItemRequest
	if ok, err := bindAndValidate(c, &req, "cart item"); !ok {
		return err
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), userID, usecase.AddCartItemInput{
		ProductID: req.ProductID,
		ShopID:    req.ShopID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateQuantity sets the quantity of a cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	productID, ok, err := pathUUID(c, "productId", "product")
	if !ok {
		return err
	}

	var req UpdateCartItemRequest
	if ok, err := bindAndValidate(c, &req, "quantity"); !ok {
		return err
	}

	view, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, productID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// RemoveItem drops a product from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	productID, ok, err := pathUUID(c, "productId", "product")
	if !ok {
		return err
	}

	view, err := h.cartUC.RemoveItem(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	view, err := h.cartUC.Clear(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
