package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultProductLimit = 20
	maxProductLimit     = 100
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves a shop's catalogue.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
// Price accepts a JSON string or number.
type CreateProductRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=4000"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency" validate:"omitempty,currency"`
	Stock       int             `json:"stock" validate:"min=0"`
	Images      []string        `json:"images" validate:"max=10,dive,max=2048"`
}

// UpdateProductRequest represents the request body for editing a product.
type UpdateProductRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=4000"`
	Price       *decimal.Decimal `json:"price"`
	Currency    *string          `json:"currency" validate:"omitempty,currency"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
	Images      []string         `json:"images" validate:"omitempty,max=10,dive,max=2048"`
}

// CreateProduct adds a product to a shop owned by the caller.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	var req CreateProductRequest
	if ok, err := bindAndValidate(c, &req, "product"); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), userID, shopID, usecase.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Stock:       req.Stock,
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// ListShopProducts pages through a shop's products.
func (h *ProductHandler) ListShopProducts(c echo.Context) error {
	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	limit, err := queryInt(c, "limit", defaultProductLimit)
	if err != nil || limit < 1 {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be a positive integer")
	}
	limit = min(limit, maxProductLimit)

	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return response.BadRequest(c, "INVALID_QUERY", "offset must be a non-negative integer")
	}

	products, err := h.productUC.ListShopProducts(c.Request().Context(), shopID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, ok, err := pathUUID(c, "productId", "product")
	if !ok {
		return err
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct edits a product in a shop owned by the caller.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	productID, ok, err := pathUUID(c, "productId", "product")
	if !ok {
		return err
	}

	var req UpdateProductRequest
	if ok, err := bindAndValidate(c, &req, "product"); !ok {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), userID, productID, usecase.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Stock:       req.Stock,
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a product from a shop owned by the caller.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	productID, ok, err := pathUUID(c, "productId", "product")
	if !ok {
		return err
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// ToggleLike likes or unlikes a product.
func (h *ProductHandler) ToggleLike(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	productID, ok, err := pathUUID(c, "productId", "product")
	if !ok {
		return err
	}

	result, err := h.productUC.ToggleLike(c.Request().Context(), userID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
