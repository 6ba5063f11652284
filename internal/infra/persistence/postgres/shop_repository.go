package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type shopRepository struct {
	db *gorm.DB
}

// shopUniqueIDIndex backs the public handle; see model.ShopModel.
const shopUniqueIDIndex = "idx_shops_unique_id"

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// Create persists a new shop. A collision on unique_id maps to ErrUniqueIDTaken
// so callers can retry with another candidate.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			if name := constraintName(err); name != "" && name != shopUniqueIDIndex {
				return domainerrors.ErrConflict.WrapMessage("shop conflicts with an existing record")
			}

			return repository.ErrUniqueIDTaken
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByID retrieves a shop by its ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUniqueID retrieves a shop by its public handle.
func (repo *shopRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*entity.Shop, error) {
	return repo.findOne(ctx, "unique_id = ?", uniqueID)
}

func (repo *shopRepository) findOne(ctx context.Context, where string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).Where(where, arg).First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// FindByOwner lists every shop of an owner, oldest first.
func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shops by owner")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// ExistsUniqueID reports whether a shop already uses uniqueID.
func (repo *shopRepository) ExistsUniqueID(ctx context.Context, uniqueID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("unique_id = ?", uniqueID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check shop unique id")
	}

	return count > 0, nil
}

// Update writes the editable shop fields. Counters are left untouched.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ?", shop.ID).
		Select("title", "description", "category", "tags", "phone", "message_template", "is_active", "updated_at").
		Updates(shopM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// IncrementShares bumps the share counter and returns the new value.
func (repo *shopRepository) IncrementShares(ctx context.Context, id uuid.UUID) (int, error) {
	var shopM model.ShopModel

	result := repo.db.WithContext(ctx).
		Model(&shopM).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "shares"}}}).
		Where("id = ?", id).
		Update("shares", gorm.Expr("shares + 1"))
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment shares")
	}

	if result.RowsAffected == 0 {
		return 0, repository.ErrShopNotFound
	}

	return shopM.Shares, nil
}

// ToggleFollower flips userID's membership in the shop's followers.
func (repo *shopRepository) ToggleFollower(ctx context.Context, shopID, userID uuid.UUID) (entity.ToggleResult, error) {
	return repo.toggle(ctx, shopID, "follower_count",
		&model.ShopFollowerModel{ShopID: shopID, UserID: userID}, userID)
}

// ToggleLike flips userID's membership in the shop's likes.
func (repo *shopRepository) ToggleLike(ctx context.Context, shopID, userID uuid.UUID) (entity.ToggleResult, error) {
	return repo.toggle(ctx, shopID, "like_count",
		&model.ShopLikeModel{ShopID: shopID, UserID: userID}, userID)
}

func (repo *shopRepository) toggle(ctx context.Context, shopID uuid.UUID, column string, row any, userID uuid.UUID) (entity.ToggleResult, error) {
	var result entity.ToggleResult

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var shopM model.ShopModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", shopID).
			First(&shopM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrShopNotFound
			}

			return errors.Wrap(err, "failed to lock shop")
		}

		active, err := toggleMembership(tx, row, "shop_id = ? AND user_id = ?", shopID, userID)
		if err != nil {
			return err
		}

		count, err := adjustCounter(tx, &model.ShopModel{}, shopID, column, active)
		if err != nil {
			return err
		}

		result = entity.ToggleResult{Active: active, Count: count}

		return nil
	})

	return result, err
}

// --- Mapper Functions ---

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	tags := []string(data.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Shop{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Tags:            tags,
		Phone:           data.Phone,
		MessageTemplate: data.MessageTemplate,
		UniqueID:        data.UniqueID,
		IsActive:        data.IsActive,
		IsVerified:      data.IsVerified,
		Shares:          data.Shares,
		FollowerCount:   data.FollowerCount,
		LikeCount:       data.LikeCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Tags:            datatypes.NewJSONSlice(data.Tags),
		Phone:           data.Phone,
		MessageTemplate: data.MessageTemplate,
		UniqueID:        data.UniqueID,
		IsActive:        data.IsActive,
		IsVerified:      data.IsVerified,
		Shares:          data.Shares,
		FollowerCount:   data.FollowerCount,
		LikeCount:       data.LikeCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
