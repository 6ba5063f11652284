package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUserID loads the user's cart with its lines.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.find(ctx, repo.db.WithContext(ctx), userID)
}

// FindByUserIDForUpdate loads the user's cart holding a row lock on it.
// Lines are read after the lock is taken, so they reflect the locked state.
func (repo *cartRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (repo *cartRepository) find(ctx context.Context, query *gorm.DB, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := query.Where("user_id = ?", userID).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	if err := repo.db.WithContext(ctx).
		Where("cart_id = ?", cartM.ID).
		Order("added_at DESC").
		Find(&cartM.Lines).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load cart lines")
	}

	return toCartDomain(&cartM), nil
}

// Save creates the cart row when needed and replaces all of its lines.
// Callers run it inside a transaction.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	db := repo.db.WithContext(ctx)
	cartM := fromCartDomain(cart)

	if cartM.ID == uuid.Nil {
		cartM.ID = uuid.New()
		if err := db.Omit("Lines").
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
			}).
			Create(cartM).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
		}

		// A concurrent insert may have won the conflict; read back the real id.
		var stored model.CartModel
		if err := db.Select("id").
			Where("user_id = ?", cartM.UserID).
			Take(&stored).Error; err != nil {
			return errors.Wrap(err, "failed to resolve cart id")
		}
		cartM.ID = stored.ID
		cart.ID = stored.ID
	} else if err := db.Model(&model.CartModel{}).
		Where("id = ?", cartM.ID).
		Update("updated_at", cartM.UpdatedAt).Error; err != nil {
		return errors.Wrap(err, "failed to touch cart")
	}

	if err := db.Where("cart_id = ?", cartM.ID).Delete(&model.CartLineModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart lines")
	}

	if len(cartM.Lines) == 0 {
		return nil
	}

	for i := range cartM.Lines {
		cartM.Lines[i].CartID = cartM.ID
	}

	if err := db.Create(&cartM.Lines).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cart line quantity must be at least 1")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to write cart lines")
	}

	return nil
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	lines := make([]entity.CartLine, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, entity.CartLine{
			ShopID:    line.ShopID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Lines:     lines,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	lines := make([]model.CartLineModel, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, model.CartLineModel{
			CartID:    data.ID,
			ProductID: line.ProductID,
			ShopID:    line.ShopID,
			Quantity:  line.Quantity,
			AddedAt:   line.AddedAt,
		})
	}

	return &model.CartModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Lines:     lines,
		UpdatedAt: data.UpdatedAt,
	}
}
