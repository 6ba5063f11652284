package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel maps the 'user_devices' table. Rows are deactivated rather
// than soft-deleted so a re-registering client reuses its row.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_owner_device,priority:1"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_owner_device,priority:2"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	Platform  string    `gorm:"type:varchar(16);not null;check:chk_user_devices_platform,platform IN ('ios','android')"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
