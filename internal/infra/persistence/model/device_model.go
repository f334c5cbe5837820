package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps user_devices. Tokens are looked up when Firebase reports them invalid.
type UserDeviceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_devices_user_id"`
	FCMToken  string         `gorm:"column:fcm_token;type:varchar(255);not null;index:idx_user_devices_fcm_token"`
	DeviceID  string         `gorm:"type:varchar(255);not null"`
	Platform  string         `gorm:"type:varchar(50);not null"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null;default:now()"`
	UpdatedAt time.Time      `gorm:"not null;default:now()"`
	DeletedAt gorm.DeletedAt `gorm:"index:idx_user_devices_deleted_at"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
