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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		switch {
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrShopNotFound.WrapMessage("product references a missing shop")
		case isCheckConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByIDsForUpdate row-locks the products in ascending id order so that
// concurrent checkouts over overlapping products acquire locks in the same order.
func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	return toProductDomains(productModels), nil
}

// FindByShop lists a shop's products, newest first.
func (repo *productRepository) FindByShop(ctx context.Context, shopID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by shop")
	}

	return toProductDomains(productModels), nil
}

// Update writes the editable product fields except stock, which only moves
// through SetStock and DecrementStock.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("title", "description", "price", "currency", "images", "updated_at").
		Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetStock overwrites the stock count of a product.
func (repo *productRepository) SetStock(ctx context.Context, id uuid.UUID, stock int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("stock", stock)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("stock must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product and its likes.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", id).Delete(&model.ProductLikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product likes")
	}

	result := db.Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock subtracts quantity from stock. The guard in the WHERE
// clause keeps stock non-negative even without a preceding row lock.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStockConflict
	}

	return nil
}

// ToggleLike flips userID's membership in the product's likes and keeps the
// counter column in step.
func (repo *productRepository) ToggleLike(ctx context.Context, productID, userID uuid.UUID) (entity.ToggleResult, error) {
	var result entity.ToggleResult

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var productM model.ProductModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id", "like_count").
			Where("id = ?", productID).
			First(&productM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to lock product")
		}

		active, err := toggleMembership(tx, &model.ProductLikeModel{ProductID: productID, UserID: userID},
			"product_id = ? AND user_id = ?", productID, userID)
		if err != nil {
			return err
		}

		count, err := adjustCounter(tx, &model.ProductModel{}, productID, "like_count", active)
		if err != nil {
			return err
		}

		result = entity.ToggleResult{Active: active, Count: count}

		return nil
	})

	return result, err
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := []string(data.Images)
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Currency:    data.Currency,
		Stock:       data.Stock,
		Images:      images,
		LikeCount:   data.LikeCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		ShopID:      data.ShopID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Currency:    data.Currency,
		Stock:       data.Stock,
		Images:      datatypes.NewJSONSlice(data.Images),
		LikeCount:   data.LikeCount,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
