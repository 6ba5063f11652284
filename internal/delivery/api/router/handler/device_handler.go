package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/api/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /devices, the push targets of the signed-in user.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

type RefreshTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required,max=255"`
}

// RegisterDevice handles POST /devices. Re-registering the same device_id
// refreshes the stored registration.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	var req RegisterDeviceRequest
	if ok, err := bindAndValidate(c, &req, "device"); !ok {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, usecase.DeviceRegistration{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

func (h *DeviceHandler) RefreshToken(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	deviceID, ok, err := pathUUID(c, "id", "device")
	if !ok {
		return err
	}

	var req RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req, "FCM token"); !ok {
		return err
	}

	if err := h.deviceUC.RefreshToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token refreshed"})
}

func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, ok, err := requireUser(c)
	if !ok {
		return err
	}

	deviceID, ok, err := pathUUID(c, "id", "device")
	if !ok {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device deactivated"})
}
