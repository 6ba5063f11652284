package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopID      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Price       decimal.Decimal             `gorm:"type:numeric(14,2);not null"`
	Currency    string                      `gorm:"type:varchar(8);not null;default:'USD'"`
	Stock       int                         `gorm:"not null;default:0;check:stock >= 0"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	LikeCount   int                         `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductLikeModel is one row of the 'product_likes' set.
type ProductLikeModel struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductLikeModel) TableName() string {
	return "product_likes"
}
