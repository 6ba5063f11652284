package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's notification inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotifications returns one page of the inbox. Paging bounds are applied by the usecase.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var query usecase.NotificationQuery
	if raw := c.QueryParam("unreadOnly"); raw != "" {
		if query.UnreadOnly, err = strconv.ParseBool(raw); err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "unreadOnly must be a boolean")
		}
	}
	if query.Page, err = queryInt(c, "page", 0); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "page must be an integer")
	}
	if query.Limit, err = queryInt(c, "limit", 0); err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be an integer")
	}

	page, err := h.notificationUC.ListNotifications(c.Request().Context(), userID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// MarkAsRead marks one notification as read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	notificationID, ok, err := pathUUID(c, "id", "notification")
	if !ok {
		return err
	}

	if err := h.notificationUC.MarkAsRead(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// MarkAllAsRead marks every unread notification as read.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	updated, err := h.notificationUC.MarkAllAsRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}

// DeleteNotification removes one notification.
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	notificationID, ok, err := pathUUID(c, "id", "notification")
	if !ok {
		return err
	}

	if err := h.notificationUC.DeleteNotification(c.Request().Context(), userID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification deleted"})
}

// ClearNotifications empties the inbox.
func (h *NotificationHandler) ClearNotifications(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	deleted, err := h.notificationUC.ClearNotifications(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted})
}
