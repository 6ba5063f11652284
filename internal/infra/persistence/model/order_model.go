package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	ShopID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	Total         decimal.Decimal  `gorm:"type:numeric(14,2);not null"`
	Currency      string           `gorm:"type:varchar(8);not null"`
	Status        string           `gorm:"type:varchar(16);not null;default:'pending'"`
	DeclineReason string           `gorm:"type:text"`
	Lines         []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel stores the price snapshot of one ordered product.
type OrderLineModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Currency  string          `gorm:"type:varchar(8);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
