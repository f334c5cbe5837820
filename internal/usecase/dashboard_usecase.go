package usecase

import (
	"context"

	"localharvest/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase aggregates seller statistics.
type DashboardUsecase interface {
	GetSellerDashboard(ctx context.Context, sellerID uuid.UUID) (*entity.SellerDashboard, error)
}
