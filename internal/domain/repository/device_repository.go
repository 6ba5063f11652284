package repository

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of each user. A device is keyed
// by its owner and the client-side device id.
type DeviceRepository interface {
	// Upsert inserts the device, or refreshes the token, platform and active
	// flag of the row with the same (user, device id). Other rows holding
	// the same token are deactivated. The stored row is written back into device.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListActiveByUser returns the user's active devices, newest first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// Deactivate stops pushes to the device without forgetting it.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// FindActiveTokensByUser returns the distinct FCM tokens of the user's active devices.
	FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error)

	// DeleteByTokens removes every device holding one of the given FCM tokens.
	DeleteByTokens(ctx context.Context, tokens []string) (int64, error)
}
