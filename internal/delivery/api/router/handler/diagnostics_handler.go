package handler

import (
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiagnosticsHandlerParams holds dependencies for DiagnosticsHandler, injected by Fx.
type DiagnosticsHandlerParams struct {
	fx.In

	Guard service.AccessGuard
}

// DiagnosticsHandler serves the /test routes, mounted only when testRoutes
// is enabled. They let a client check what the server makes of its token.
type DiagnosticsHandler struct {
	guard service.AccessGuard
}

// NewDiagnosticsHandler is the constructor for DiagnosticsHandler.
func NewDiagnosticsHandler(params DiagnosticsHandlerParams) *DiagnosticsHandler {
	return &DiagnosticsHandler{guard: params.Guard}
}

// Ping echoes the request id.
func (h *DiagnosticsHandler) Ping(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"request_id": deliverycontext.GetRequestID(c),
	})
}

// WhoAmI echoes the identity resolved from the bearer token.
func (h *DiagnosticsHandler) WhoAmI(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	roles, _ := middleware.GetRoles(c)

	return response.Success(c, http.StatusOK, map[string]any{
		"user_id": userID,
		"roles":   roles,
	})
}

// ShopAccess reports whether the caller owns the shop.
func (h *DiagnosticsHandler) ShopAccess(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	shopID, ok, err := pathUUID(c, "shopId", "shop")
	if !ok {
		return err
	}

	owns, err := h.guard.ResolveShopOwnership(c.Request().Context(), shopID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"owner": owns})
}

// OrderAccess reports how the caller relates to the order.
func (h *DiagnosticsHandler) OrderAccess(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	orderID, ok, err := pathUUID(c, "orderId", "order")
	if !ok {
		return err
	}

	participant, err := h.guard.ResolveOrderParticipant(c.Request().Context(), orderID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{
		"buyer":  participant.IsBuyer,
		"owner":  participant.IsOwner,
		"member": participant.Any(),
	})
}
