package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a device registered by a buyer or seller to receive order and shipment push notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"` // Firebase Cloud Messaging registration token.
	DeviceID  string    `json:"device_id"` // Client-side device identifier.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DevicePlatforms lists the platforms a device may register with.
var DevicePlatforms = []string{"ios", "android", "web"}
