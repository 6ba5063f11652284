package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	row := deviceRow(device)

	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(
			clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"fcm_token", "platform", "is_active", "updated_at"}),
			},
			clause.Returning{},
		).Create(row).Error
		if err != nil {
			switch {
			case isForeignKeyConstraintViolation(err):
				return domainerrors.ErrUserNotFound.WrapMessage("device owner does not exist")
			case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
				return domainerrors.ErrValidationFailed.WrapMessage("invalid device registration")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
		}

		// A handset that changed accounts keeps its token; only the newest owner gets pushes.
		if err := tx.Model(&model.UserDeviceModel{}).
			Where("fcm_token = ? AND id <> ? AND is_active", row.FCMToken, row.ID).
			Updates(map[string]any{"is_active": false, "updated_at": time.Now()}).Error; err != nil {
			return errors.Wrap(err, "failed to release token from other devices")
		}

		*device = *deviceEntity(row)

		return nil
	})
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var row model.UserDeviceModel

	err := repo.db.WithContext(ctx).Take(&row, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrDeviceNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return deviceEntity(&row), nil
}

func (repo *deviceRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var rows []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active", userID).
		Order("updated_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(rows))
	for i, row := range rows {
		devices[i] = deviceEntity(row)
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	return repo.updateByID(ctx, id, map[string]any{"fcm_token": fcmToken, "is_active": true})
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return repo.updateByID(ctx, id, map[string]any{"is_active": false})
}

func (repo *deviceRepository) updateByID(ctx context.Context, id uuid.UUID, changes map[string]any) error {
	changes["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(changes)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var tokens []string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Distinct("fcm_token").
		Where("user_id = ? AND is_active", userID).
		Pluck("fcm_token", &tokens).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tokens by user")
	}

	return tokens, nil
}

// DeleteByTokens prunes registrations FCM reported as unregistered.
func (repo *deviceRepository) DeleteByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("fcm_token IN ?", tokens).
		Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete devices by tokens")
	}

	return result.RowsAffected, nil
}

func deviceRow(d *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        d.ID,
		UserID:    d.UserID,
		DeviceID:  d.DeviceID,
		FCMToken:  d.FCMToken,
		Platform:  d.Platform,
		IsActive:  d.IsActive,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func deviceEntity(row *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        row.ID,
		UserID:    row.UserID,
		DeviceID:  row.DeviceID,
		FCMToken:  row.FCMToken,
		Platform:  row.Platform,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
