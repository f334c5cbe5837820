package impl

import (
	"context"
	"log/slog"

	"localharvest/config"
	"localharvest/internal/domain/entity"
	"localharvest/internal/domain/repository"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const recentOrderCount = 5

type dashboardService struct {
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	shipmentRepo repository.ShipmentRepository
	rules        *config.MarketplaceConfig
	logger       *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	OrderRepo    repository.OrderRepository
	ShipmentRepo repository.ShipmentRepository
	Config       *config.Config
	Logger       *slog.Logger
}

func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		productRepo:  params.ProductRepo,
		orderRepo:    params.OrderRepo,
		shipmentRepo: params.ShipmentRepo,
		rules:        params.Config.Marketplace,
		logger:       params.Logger,
	}
}

// GetSellerDashboard runs the independent aggregate queries concurrently.
func (srv *dashboardService) GetSellerDashboard(ctx context.Context, sellerID uuid.UUID) (*entity.SellerDashboard, error) {
	dashboard := &entity.SellerDashboard{}
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		total, available, err := srv.productRepo.CountBySeller(gctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		dashboard.TotalProducts, dashboard.AvailableProducts = total, available

		return nil
	})
	group.Go(func() error {
		lowStock, err := srv.productRepo.FindLowStock(gctx, sellerID, srv.rules.LowStockThreshold)
		if err != nil {
			return errors.Wrap(err, "failed to load low stock products")
		}
		dashboard.LowStockProducts = lowStock

		return nil
	})
	group.Go(func() error {
		counts, err := srv.orderRepo.CountByStatus(gctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to count orders")
		}
		dashboard.OrdersByStatus = counts
		for _, count := range counts {
			dashboard.TotalOrders += count
		}

		return nil
	})
	group.Go(func() error {
		revenue, err := srv.orderRepo.SumDeliveredRevenue(gctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to sum revenue")
		}
		dashboard.Revenue = revenue

		return nil
	})
	group.Go(func() error {
		pending, err := srv.shipmentRepo.CountOpenBySeller(gctx, sellerID)
		if err != nil {
			return errors.Wrap(err, "failed to count open shipments")
		}
		dashboard.PendingShipments = pending

		return nil
	})
	group.Go(func() error {
		recent, _, err := srv.orderRepo.ListBySeller(gctx, sellerID, entity.OrderFilter{Page: 1, PageSize: recentOrderCount})
		if err != nil {
			return errors.Wrap(err, "failed to load recent orders")
		}
		dashboard.RecentOrders = recent

		return nil
	})

	if err := group.Wait(); err != nil {
		srv.logger.Error("Failed to build seller dashboard", slog.String("seller_id", sellerID.String()), slog.Any("error", err))

		return nil, err
	}

	return dashboard, nil
}
