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

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUsecase.MockDeviceUsecase) {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{
		DeviceUC: deviceUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	userID := uuid.New()

	t.Run("registered", func(t *testing.T) {
		h, deviceUC := createTestDeviceHandler(t)
		deviceUC.EXPECT().
			RegisterDevice(mock.Anything, userID, usecase.DeviceRegistration{FCMToken: "tok", DeviceID: "pixel", Platform: "android"}).
			Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, IsActive: true}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/devices",
			body:   `{"fcm_token":"tok","device_id":"pixel","platform":"android"}`,
			userID: userID,
		})

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unknown platform", func(t *testing.T) {
		h, _ := createTestDeviceHandler(t)
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/devices",
			body:   `{"fcm_token":"tok","device_id":"pc","platform":"windows"}`,
			userID: userID,
		})

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, map[string]any{"platform": "oneof=ios android"}, decodeError(t, rec).Details)
	})

	t.Run("anonymous", func(t *testing.T) {
		h, _ := createTestDeviceHandler(t)
		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/devices", body: `{}`})

		require.NoError(t, h.RegisterDevice(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestDeviceHandler_RefreshToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name     string
		params   map[string]string
		body     string
		setup    func(uc *mockUsecase.MockDeviceUsecase)
		wantCode int
	}{
		{
			name:   "refreshed",
			params: map[string]string{"id": deviceID.String()},
			body:   `{"fcm_token":"fresh"}`,
			setup: func(uc *mockUsecase.MockDeviceUsecase) {
				uc.EXPECT().RefreshToken(mock.Anything, userID, deviceID, "fresh").Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "bad device id",
			params:   map[string]string{"id": "nope"},
			body:     `{"fcm_token":"fresh"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "device of another user",
			params: map[string]string{"id": deviceID.String()},
			body:   `{"fcm_token":"fresh"}`,
			setup: func(uc *mockUsecase.MockDeviceUsecase) {
				uc.EXPECT().RefreshToken(mock.Anything, userID, deviceID, "fresh").Return(domainerrors.ErrForbidden)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deviceUC := createTestDeviceHandler(t)
			if tt.setup != nil {
				tt.setup(deviceUC)
			}

			c, rec := newTestContext(testRequest{
				method: http.MethodPut,
				target: "/api/v1/devices/" + tt.params["id"] + "/token",
				body:   tt.body,
				userID: userID,
				params: tt.params,
			})

			require.NoError(t, h.RefreshToken(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeviceHandler_ListAndDeactivate(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)
	userID := uuid.New()
	deviceID := uuid.New()

	deviceUC.EXPECT().ListDevices(mock.Anything, userID).Return([]*entity.UserDevice{{ID: deviceID, UserID: userID}}, nil)
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).Return(nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/devices", userID: userID})
	require.NoError(t, h.ListDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var devices []entity.UserDevice
	decodeData(t, rec, &devices)
	require.Len(t, devices, 1)
	assert.Equal(t, deviceID, devices[0].ID)

	c, rec = newTestContext(testRequest{
		method: http.MethodDelete,
		target: "/api/v1/devices/" + deviceID.String(),
		userID: userID,
		params: map[string]string{"id": deviceID.String()},
	})
	require.NoError(t, h.DeactivateDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
