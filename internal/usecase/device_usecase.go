package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a client reports when it opts into pushes.
type DeviceRegistration struct {
	FCMToken string
	DeviceID string // stable client-side identifier
	Platform string
}

// DeviceUsecase manages the push targets notified about orders and inbox items.
type DeviceUsecase interface {
	// RegisterDevice creates the device or refreshes the existing
	// registration with the same client device id.
	RegisterDevice(ctx context.Context, userID uuid.UUID, reg DeviceRegistration) (*entity.UserDevice, error)
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	RefreshToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
