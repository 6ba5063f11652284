package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the 'users' table shared with the auth service.
type UserModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name          string     `gorm:"type:varchar(255)"`
	PrimaryShopID *uuid.UUID `gorm:"type:uuid;index"`
	PrimaryShop   *ShopModel `gorm:"foreignKey:PrimaryShopID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}
