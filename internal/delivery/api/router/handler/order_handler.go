package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// DeclineOrderRequest is the optional body of a decline.
type DeclineOrderRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// SubmitOrder places an order from the caller's cart lines for one shop.
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	output, err := h.orderUC.SubmitOrder(c.Request().Context(), userID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// ListMyOrders lists orders placed by the caller.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListShopOrders lists the orders of a shop owned by the caller.
func (h *OrderHandler) ListShopOrders(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	orders, err := h.orderUC.ListShopOrders(c.Request().Context(), userID, shopID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns an order to its buyer or the shop owner.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	orderID, ok, err := pathUUID(c, "orderId", "order")
	if !ok {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ApproveOrder approves a pending order.
func (h *OrderHandler) ApproveOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	orderID, ok, err := pathUUID(c, "orderId", "order")
	if !ok {
		return err
	}

	order, err := h.orderUC.ApproveOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeclineOrder declines a pending order with an optional reason.
func (h *OrderHandler) DeclineOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	orderID, ok, err := pathUUID(c, "orderId", "order")
	if !ok {
		return err
	}

	var req DeclineOrderRequest
	if c.Request().ContentLength != 0 {
		if ok, err := bindAndValidate(c, &req, "decline"); !ok {
			return err
		}
	}

	order, err := h.orderUC.DeclineOrder(c.Request().Context(), userID, orderID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// DeleteOrder removes an order.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	orderID, ok, err := pathUUID(c, "orderId", "order")
	if !ok {
		return err
	}

	if err := h.orderUC.DeleteOrder(c.Request().Context(), userID, orderID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
