package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShopModel is the GORM-specific struct for the 'shops' table.
type ShopModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title           string                      `gorm:"type:varchar(255);not null"`
	Description     string                      `gorm:"type:text"`
	Category        string                      `gorm:"type:varchar(100)"`
	Tags            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Phone           string                      `gorm:"type:varchar(32);not null"`
	MessageTemplate string                      `gorm:"type:text;not null"`
	UniqueID        string                      `gorm:"type:varchar(255);uniqueIndex:idx_shops_unique_id;not null"`
	IsActive        bool                        `gorm:"not null;default:true"`
	IsVerified      bool                        `gorm:"not null;default:false"`
	Shares          int                         `gorm:"not null;default:0"`
	FollowerCount   int                         `gorm:"not null;default:0"`
	LikeCount       int                         `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ShopFollowerModel is one row of the 'shop_followers' set.
type ShopFollowerModel struct {
	ShopID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopFollowerModel) TableName() string {
	return "shop_followers"
}

// ShopLikeModel is one row of the 'shop_likes' set.
type ShopLikeModel struct {
	ShopID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopLikeModel) TableName() string {
	return "shop_likes"
}
