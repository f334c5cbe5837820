package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	rules     *config.MarketplaceConfig
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		rules:     params.Config.Marketplace,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceOrder validates the requested lines against locked product rows, takes the
// stock and records the order in one transaction.
func (srv *orderService) PlaceOrder(ctx context.Context, buyerID uuid.UUID, input usecase.PlaceOrderInput) (*usecase.PlaceOrderOutput, error) {
	if !input.PaymentMethod.IsValid() {
		return nil, domainerrors.ErrInvalidPaymentMethod.WithDetails(string(input.PaymentMethod))
	}

	key := strings.TrimSpace(input.IdempotencyKey)
	if len(key) > entity.MaxIdempotencyKeyLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("idempotency key must be at most %d characters", entity.MaxIdempotencyKeyLength),
		)
	}
	if key != "" {
		existing, err := srv.findReplay(ctx, buyerID, key)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &usecase.PlaceOrderOutput{Order: existing, Replayed: true}, nil
		}
	}

	var placed *entity.Order
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		order, err := srv.placeInTx(ctx, repos, buyerID, input, key)
		if err != nil {
			return err
		}
		placed = order

		return nil
	})
	if err != nil {
		// A concurrent request with the same key won the unique index.
		if key != "" && errors.Is(err, domainerrors.ErrConflict) {
			existing, findErr := srv.findReplay(ctx, buyerID, key)
			if findErr == nil && existing != nil {
				return &usecase.PlaceOrderOutput{Order: existing, Replayed: true}, nil
			}
		}
		srv.log(ctx).Info("Order placement rejected", slog.String("buyer_id", buyerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to place order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("order_ref", placed.DisplayID),
		slog.String("seller_id", placed.SellerID.String()),
		slog.String("total", placed.TotalAmount.StringFixed(2)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketplaceEvent{
		Type:     service.EventOrderPlaced,
		OrderID:  placed.ID.String(),
		OrderRef: placed.DisplayID,
		BuyerID:  placed.BuyerID.String(),
		SellerID: placed.SellerID.String(),
		Status:   string(placed.Status),
		Total:    placed.TotalAmount.StringFixed(2),
	})

	return &usecase.PlaceOrderOutput{Order: placed}, nil
}

func (srv *orderService) findReplay(ctx context.Context, buyerID uuid.UUID, key string) (*entity.Order, error) {
	existing, err := srv.orderRepo.FindByIdempotencyKey(ctx, buyerID, key)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up idempotency key")
	}

	return existing, nil
}

func (srv *orderService) placeInTx(
	ctx context.Context,
	repos repository.RepositoryFactory,
	buyerID uuid.UUID,
	input usecase.PlaceOrderInput,
	key string,
) (*entity.Order, error) {
	productRepo := repos.NewProductRepository()

	lines := input.Items
	var cart *entity.Cart
	if len(lines) == 0 {
		var err error
		cart, err = repos.NewCartRepository().FindByBuyer(ctx, buyerID)
		if errors.Is(err, repository.ErrCartNotFound) || (err == nil && cart.IsEmpty()) {
			return nil, domainerrors.ErrCartEmpty
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart")
		}
		lines = linesFromCart(cart)
	}

	productIDs, requested, err := sumRequested(lines)
	if err != nil {
		return nil, err
	}

	products, err := productRepo.FindByIDsForUpdate(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}
	for _, id := range productIDs {
		product, ok := products[id]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails(id.String())
		}
		if !product.IsAvailable {
			return nil, domainerrors.ErrProductUnavailable.WithDetails(product.Name)
		}
		if requested[id] > product.Quantity {
			return nil, stockError(product, requested[id])
		}
	}

	order := &entity.Order{
		ID:              uuid.New(),
		BuyerID:         buyerID,
		SellerID:        products[lines[0].ProductID].SellerID,
		Items:           make([]entity.OrderItem, 0, len(lines)),
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		Status:          entity.OrderStatusPending,
		Notes:           strings.TrimSpace(input.Notes),
		IdempotencyKey:  key,
	}
	for _, line := range lines {
		product := products[line.ProductID]
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: product.ID,
			SellerID:  product.SellerID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Unit:      product.Unit,
		})
	}
	order.RecalculateTotal()
	srv.warnOnClientTotals(ctx, lines, order)

	seq, err := repos.NewCounterRepository().Next(ctx, repository.CounterOrder)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate order number")
	}
	order.DisplayID = entity.FormatDisplayID(srv.rules.OrderPrefix, seq)

	for _, id := range productIDs {
		remaining, err := productRepo.DecrementStock(ctx, id, requested[id])
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, stockError(products[id], requested[id])
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to decrement stock")
		}
		if remaining == 0 {
			if err := productRepo.SetAvailability(ctx, id, false); err != nil {
				return nil, errors.Wrap(err, "failed to mark product sold out")
			}
		}
	}

	if err := repos.NewOrderRepository().Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	if cart != nil {
		cart.Clear()
		if err := repos.NewCartRepository().Save(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to clear cart")
		}
	}

	return order, nil
}

// sumRequested returns the distinct product ids in first-seen order and the
// summed quantity per product.
func sumRequested(lines []usecase.PlaceOrderItem) ([]uuid.UUID, map[uuid.UUID]int, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	requested := make(map[uuid.UUID]int, len(lines))

	for _, line := range lines {
		if err := checkLineQuantity(line.Quantity); err != nil {
			return nil, nil, err
		}
		if _, seen := requested[line.ProductID]; !seen {
			ids = append(ids, line.ProductID)
		}
		requested[line.ProductID] += line.Quantity
	}

	return ids, requested, nil
}

func linesFromCart(cart *entity.Cart) []usecase.PlaceOrderItem {
	lines := make([]usecase.PlaceOrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, usecase.PlaceOrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return lines
}

func (srv *orderService) warnOnClientTotals(ctx context.Context, lines []usecase.PlaceOrderItem, order *entity.Order) {
	for i, line := range lines {
		if line.Total == nil || line.Total.Equal(order.Items[i].Total) {
			continue
		}
		srv.log(ctx).Warn("Ignoring client line total",
			slog.String("product_id", line.ProductID.String()),
			slog.String("client_total", line.Total.String()),
			slog.String("server_total", order.Items[i].Total.String()),
		)
	}
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, sellerID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	order, err := findOrderIn(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, err
	}
	if order.SellerID != sellerID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}
	if srv.rules.StrictOrderTransitions && !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("%s -> %s", order.Status, status))
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}
	previous := order.Status
	order.Status = status

	srv.log(ctx).Info("Order status updated",
		slog.String("order_ref", order.DisplayID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MarketplaceEvent{
		Type:     service.EventOrderStatusChanged,
		OrderID:  order.ID.String(),
		OrderRef: order.DisplayID,
		BuyerID:  order.BuyerID.String(),
		SellerID: order.SellerID.String(),
		Status:   string(status),
	})

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := findOrderIn(ctx, srv.orderRepo, orderID)
	if err != nil {
		return nil, err
	}
	if !order.IsVisibleTo(userID) {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}

func (srv *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter) (*usecase.Page[*entity.Order], error) {
	return srv.listOrders(ctx, filter, func(f entity.OrderFilter) ([]*entity.Order, int64, error) {
		return srv.orderRepo.ListByBuyer(ctx, buyerID, f)
	})
}

func (srv *orderService) ListSellerOrders(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter) (*usecase.Page[*entity.Order], error) {
	return srv.listOrders(ctx, filter, func(f entity.OrderFilter) ([]*entity.Order, int64, error) {
		return srv.orderRepo.ListBySeller(ctx, sellerID, f)
	})
}

func (srv *orderService) listOrders(
	_ context.Context,
	filter entity.OrderFilter,
	list func(entity.OrderFilter) ([]*entity.Order, int64, error),
) (*usecase.Page[*entity.Order], error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(string(filter.Status))
	}
	filter.Page, filter.PageSize = normalizePage(filter.Page, filter.PageSize, srv.rules)

	orders, total, err := list(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.Page[*entity.Order]{
		Items:    orders,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
