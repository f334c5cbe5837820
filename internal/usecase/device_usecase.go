package usecase

import (
	"context"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client app reports when it registers for order notifications.
type DeviceInfo struct {
	FCMToken string
	DeviceID string // Stable per-install id chosen by the client.
	Platform string // ios, android or web.
}

// DeviceUsecase manages the push targets of the calling account.
type DeviceUsecase interface {
	// RegisterDevice is idempotent on DeviceID: a known install gets its token refreshed.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// GetUserDevices lists active devices only.
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
