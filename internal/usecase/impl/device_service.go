package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, reg usecase.DeviceRegistration) (*entity.UserDevice, error) {
	platform, err := normalizePlatform(reg.Platform)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(reg.FCMToken)
	clientID := strings.TrimSpace(reg.DeviceID)
	if token == "" || clientID == "" {
		return nil, domainerrors.ErrInvalidArgument.WithMessage("FCM token and device id are required")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: token,
		DeviceID: clientID,
		Platform: platform,
		IsActive: true,
	}
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("platform", platform),
	)

	return device, nil
}

func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

// RefreshToken replaces the token of one of the user's devices and reactivates it.
func (s *deviceService) RefreshToken(ctx context.Context, userID, deviceID uuid.UUID, fcmToken string) error {
	token := strings.TrimSpace(fcmToken)
	if token == "" {
		return domainerrors.ErrInvalidArgument.WithMessage("FCM token is required")
	}

	if err := s.authorize(ctx, userID, deviceID); err != nil {
		return err
	}

	return s.translate(s.deviceRepo.UpdateToken(ctx, deviceID, token), "failed to refresh token")
}

func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if err := s.authorize(ctx, userID, deviceID); err != nil {
		return err
	}

	return s.translate(s.deviceRepo.Deactivate(ctx, deviceID), "failed to deactivate device")
}

// authorize fails unless deviceID exists and belongs to userID.
func (s *deviceService) authorize(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		return s.translate(err, "failed to load device")
	}

	if device.UserID != userID {
		return domainerrors.ErrForbidden.WithMessage("Device belongs to another user")
	}

	return nil
}

func (s *deviceService) translate(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	default:
		return errors.Wrap(err, msg)
	}
}

func normalizePlatform(raw string) (string, error) {
	switch platform := strings.ToLower(strings.TrimSpace(raw)); platform {
	case entity.PlatformIOS, entity.PlatformAndroid:
		return platform, nil
	default:
		return "", domainerrors.ErrInvalidArgument.WithMessage("Platform must be ios or android")
	}
}
