package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"localharvest/config"
	deliverycontext "localharvest/internal/delivery/context"
	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/domain/service"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shipmentService struct {
	txManager    repository.TransactionManager
	shipmentRepo repository.ShipmentRepository
	orderRepo    repository.OrderRepository
	qrService    service.QRCodeService
	publisher    service.EventPublisher
	rules        *config.MarketplaceConfig
	logger       *slog.Logger
	now          func() time.Time
}

// ShipmentServiceParams holds dependencies for ShipmentService, injected by Fx.
type ShipmentServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ShipmentRepo repository.ShipmentRepository
	OrderRepo    repository.OrderRepository
	QRService    service.QRCodeService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

func NewShipmentService(params ShipmentServiceParams) usecase.ShipmentUsecase {
	return &shipmentService{
		txManager:    params.TxManager,
		shipmentRepo: params.ShipmentRepo,
		orderRepo:    params.OrderRepo,
		qrService:    params.QRService,
		publisher:    params.Publisher,
		rules:        params.Config.Marketplace,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *shipmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *shipmentService) CreateShipment(ctx context.Context, sellerID uuid.UUID, input usecase.CreateShipmentInput) (*entity.Shipment, error) {
	var (
		created *entity.Shipment
		order   *entity.Order
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		orderRepo := repos.NewOrderRepository()
		shipmentRepo := repos.NewShipmentRepository()

		var err error
		order, err = findOrderIn(ctx, orderRepo, input.OrderID)
		if err != nil {
			return err
		}
		if order.SellerID != sellerID {
			return domainerrors.ErrOrderOwnershipViolation
		}

		_, err = shipmentRepo.FindByOrderID(ctx, order.ID)
		if err == nil {
			return domainerrors.ErrShipmentAlreadyExists.WithDetails(order.DisplayID)
		}
		if !errors.Is(err, repository.ErrShipmentNotFound) {
			return errors.Wrap(err, "failed to check existing shipment")
		}

		customerName, err := srv.customerName(ctx, repos.NewUserRepository(), order)
		if err != nil {
			return err
		}

		seq, err := repos.NewCounterRepository().Next(ctx, repository.CounterShipment)
		if err != nil {
			return errors.Wrap(err, "failed to allocate shipment number")
		}

		shipment := &entity.Shipment{
			ID:                   uuid.New(),
			DisplayID:            entity.FormatDisplayID(srv.rules.ShipmentPrefix, seq),
			OrderID:              order.ID,
			SellerID:             order.SellerID,
			BuyerID:              order.BuyerID,
			CustomerName:         customerName,
			Address:              order.ShippingAddress,
			Status:               entity.ShipmentStatusPending,
			ExpectedDeliveryDate: srv.expectedDelivery(input.ExpectedDeliveryDate),
			TrackingNumber:       strings.TrimSpace(input.TrackingNumber),
			Carrier:              strings.TrimSpace(input.Carrier),
			Notes:                strings.TrimSpace(input.Notes),
		}
		if err := shipmentRepo.Create(ctx, shipment); err != nil {
			if errors.Is(err, repository.ErrDuplicateShipment) {
				return domainerrors.ErrShipmentAlreadyExists.WithDetails(order.DisplayID)
			}

			return errors.Wrap(err, "failed to create shipment")
		}

		if order.Status != entity.OrderStatusShipped && order.Status != entity.OrderStatusDelivered {
			if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped); err != nil {
				return errors.Wrap(err, "failed to mark order shipped")
			}
			order.Status = entity.OrderStatusShipped
		}
		created = shipment

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create shipment")
	}

	srv.log(ctx).Info("Shipment created",
		slog.String("shipment_ref", created.DisplayID),
		slog.String("order_ref", order.DisplayID),
	)
	srv.publish(ctx, service.EventShipmentCreated, created, order.DisplayID)

	return created, nil
}

func (srv *shipmentService) expectedDelivery(requested *time.Time) time.Time {
	if requested != nil && !requested.IsZero() {
		return requested.UTC()
	}

	return srv.now().UTC().AddDate(0, 0, srv.rules.DefaultDeliveryDays)
}

// customerName prefers the recipient on the shipping address and falls back to
// the buyer's account name.
func (srv *shipmentService) customerName(ctx context.Context, userRepo repository.UserRepository, order *entity.Order) (string, error) {
	if name := strings.TrimSpace(order.ShippingAddress.FullName); name != "" {
		return name, nil
	}

	buyer, err := userRepo.FindByID(ctx, order.BuyerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrUserNotFound.WithDetails(order.BuyerID.String())
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load buyer")
	}

	return buyer.Name, nil
}

func (srv *shipmentService) UpdateShipmentStatus(
	ctx context.Context,
	sellerID, shipmentID uuid.UUID,
	input usecase.UpdateShipmentStatusInput,
) (*entity.Shipment, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrInvalidShipmentStatus.WithDetails(string(input.Status))
	}

	var (
		updated  *entity.Shipment
		orderRef string
	)

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		shipmentRepo := repos.NewShipmentRepository()
		orderRepo := repos.NewOrderRepository()

		shipment, err := findShipmentIn(ctx, shipmentRepo, shipmentID)
		if err != nil {
			return err
		}
		if shipment.SellerID != sellerID {
			return domainerrors.ErrShipmentOwnershipViolation
		}

		shipment.ApplyStatus(input.Status, srv.now().UTC())
		if input.TrackingNumber != nil {
			shipment.TrackingNumber = strings.TrimSpace(*input.TrackingNumber)
		}
		if input.Carrier != nil {
			shipment.Carrier = strings.TrimSpace(*input.Carrier)
		}
		if input.Notes != nil {
			shipment.Notes = strings.TrimSpace(*input.Notes)
		}

		if err := shipmentRepo.Update(ctx, shipment); err != nil {
			return errors.Wrap(err, "failed to update shipment")
		}

		if input.Status == entity.ShipmentStatusDelivered {
			if err := orderRepo.UpdateStatus(ctx, shipment.OrderID, entity.OrderStatusDelivered); err != nil {
				return errors.Wrap(err, "failed to mark order delivered")
			}
		}

		order, err := findOrderIn(ctx, orderRepo, shipment.OrderID)
		if err != nil {
			return err
		}
		orderRef = order.DisplayID
		updated = shipment

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update shipment status")
	}

	srv.log(ctx).Info("Shipment status updated",
		slog.String("shipment_ref", updated.DisplayID),
		slog.String("status", string(updated.Status)),
	)
	srv.publish(ctx, service.EventShipmentStatusChanged, updated, orderRef)

	return updated, nil
}

func (srv *shipmentService) publish(ctx context.Context, eventType service.EventType, shipment *entity.Shipment, orderRef string) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketplaceEvent{
		Type:        eventType,
		OrderID:     shipment.OrderID.String(),
		OrderRef:    orderRef,
		ShipmentID:  shipment.ID.String(),
		ShipmentRef: shipment.DisplayID,
		BuyerID:     shipment.BuyerID.String(),
		SellerID:    shipment.SellerID.String(),
		Status:      string(shipment.Status),
	})
}

func (srv *shipmentService) GetShipment(ctx context.Context, userID, shipmentID uuid.UUID) (*entity.Shipment, error) {
	shipment, err := findShipmentIn(ctx, srv.shipmentRepo, shipmentID)
	if err != nil {
		return nil, err
	}
	if !shipment.IsVisibleTo(userID) {
		return nil, domainerrors.ErrShipmentOwnershipViolation
	}

	return shipment, nil
}

func (srv *shipmentService) GetShipmentByOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Shipment, error) {
	shipment, err := srv.shipmentRepo.FindByOrderID(ctx, orderID)
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return nil, domainerrors.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shipment")
	}
	if !shipment.IsVisibleTo(userID) {
		return nil, domainerrors.ErrShipmentOwnershipViolation
	}

	return shipment, nil
}

func (srv *shipmentService) ListSellerShipments(ctx context.Context, sellerID uuid.UUID, page, pageSize int) (*usecase.Page[*entity.Shipment], error) {
	page, pageSize = normalizePage(page, pageSize, srv.rules)

	shipments, total, err := srv.shipmentRepo.ListBySeller(ctx, sellerID, page, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipments")
	}

	return &usecase.Page[*entity.Shipment]{
		Items:    shipments,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (srv *shipmentService) TrackShipment(ctx context.Context, displayID string) (*usecase.TrackingView, error) {
	displayID = strings.TrimSpace(displayID)
	if displayID == "" {
		return nil, domainerrors.ErrShipmentNotFound
	}

	shipment, err := srv.shipmentRepo.FindByDisplayID(ctx, displayID)
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return nil, domainerrors.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shipment")
	}

	order, err := findOrderIn(ctx, srv.orderRepo, shipment.OrderID)
	if err != nil {
		return nil, err
	}

	return &usecase.TrackingView{
		DisplayID:            shipment.DisplayID,
		OrderRef:             order.DisplayID,
		Status:               shipment.Status,
		Carrier:              shipment.Carrier,
		TrackingNumber:       shipment.TrackingNumber,
		DestinationCity:      shipment.Address.City,
		ExpectedDeliveryDate: shipment.ExpectedDeliveryDate,
		ActualDeliveryDate:   shipment.ActualDeliveryDate,
		UpdatedAt:            shipment.UpdatedAt,
	}, nil
}

func (srv *shipmentService) GenerateTrackingQR(ctx context.Context, userID, shipmentID uuid.UUID) ([]byte, error) {
	shipment, err := srv.GetShipment(ctx, userID, shipmentID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateTrackingQR(shipment.DisplayID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render tracking QR code")
	}

	return png, nil
}

func findOrderIn(ctx context.Context, orderRepo repository.OrderRepository, orderID uuid.UUID) (*entity.Order, error) {
	order, err := orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order")
	}

	return order, nil
}

func findShipmentIn(ctx context.Context, shipmentRepo repository.ShipmentRepository, shipmentID uuid.UUID) (*entity.Shipment, error) {
	shipment, err := shipmentRepo.FindByID(ctx, shipmentID)
	if errors.Is(err, repository.ErrShipmentNotFound) {
		return nil, domainerrors.ErrShipmentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shipment")
	}

	return shipment, nil
}
