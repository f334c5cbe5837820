package repository

import (
	"context"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of buyers and sellers. Order and
// shipment notifications fan out to the active devices of one account.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser includes inactive devices so a re-registration can revive one.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the token and reactivates the device.
	UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error

	// DeactivateByTokens is called with the tokens Firebase rejected during a send.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)

	// DeleteDevice soft deletes.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
