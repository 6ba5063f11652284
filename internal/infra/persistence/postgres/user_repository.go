package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userColumns are the columns this service reads; the rest belong to the auth service.
//
//nolint:gochecknoglobals
var userColumns = []string{"id", "email", "name", "primary_shop_id"}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var row model.UserModel

	err := repo.db.WithContext(ctx).Select(userColumns).Take(&row, "id = ?", id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrUserNotFound
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return &entity.User{
		ID:            row.ID,
		Email:         row.Email,
		Name:          row.Name,
		PrimaryShopID: row.PrimaryShopID,
	}, nil
}

func (repo *userRepository) SetPrimaryShop(ctx context.Context, userID, shopID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("primary_shop_id", shopID)

	switch {
	case result.Error != nil && isForeignKeyConstraintViolation(result.Error):
		return repository.ErrShopNotFound
	case result.Error != nil:
		return errors.Wrap(result.Error, "failed to set primary shop")
	case result.RowsAffected == 0:
		return repository.ErrUserNotFound
	}

	return nil
}
