package postgres

import (
	"context"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const idempotencyIndex = "idx_orders_buyer_idempotency_key"

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func preloadOrderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create inserts the order and its items; GORM writes the association in the same statement batch.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueViolationOn(err, idempotencyIndex) {
			return domainerrors.ErrConflict.WithDetails("an order with this idempotency key already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("order references a missing account")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadOrderItems).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, buyerID uuid.UUID, key string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadOrderItems).
		Where("buyer_id = ? AND idempotency_key = ?", buyerID, key).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by idempotency key")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	return repo.list(ctx, "buyer_id = ?", buyerID, filter)
}

func (repo *orderRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	return repo.list(ctx, "seller_id = ?", sellerID, filter)
}

func (repo *orderRepository) list(ctx context.Context, ownerClause string, ownerID uuid.UUID, filter entity.OrderFilter) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Where(ownerClause, ownerID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := query.
		Preload("Items", preloadOrderItems).
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) CountByStatus(ctx context.Context, sellerID uuid.UUID) (map[entity.OrderStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Where("seller_id = ?", sellerID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int64, len(entity.OrderStatuses))
	for _, status := range entity.OrderStatuses {
		counts[status] = 0
	}
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func (repo *orderRepository) SumDeliveredRevenue(ctx context.Context, sellerID uuid.UUID) (decimal.Decimal, error) {
	var result struct {
		Revenue decimal.NullDecimal
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("SUM(total_amount) AS revenue").
		Where("seller_id = ? AND status = ?", sellerID, string(entity.OrderStatusDelivered)).
		Scan(&result).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum revenue")
	}
	if !result.Revenue.Valid {
		return decimal.Zero, nil
	}

	return result.Revenue.Decimal, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	order := &entity.Order{
		ID:              data.ID,
		DisplayID:       data.DisplayID,
		BuyerID:         data.BuyerID,
		SellerID:        data.SellerID,
		Items:           make([]entity.OrderItem, 0, len(data.Items)),
		TotalAmount:     data.TotalAmount,
		ShippingAddress: toAddressDomain(data.Shipping),
		PaymentMethod:   entity.PaymentMethod(data.PaymentMethod),
		Status:          entity.OrderStatus(data.Status),
		Notes:           data.Notes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.IdempotencyKey != nil {
		order.IdempotencyKey = *data.IdempotencyKey
	}

	for _, item := range data.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Unit:      entity.Unit(item.Unit),
			Total:     item.Total,
		})
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data.ID == uuid.Nil {
		data.ID = uuid.New()
	}

	orderM := &model.OrderModel{
		ID:            data.ID,
		DisplayID:     data.DisplayID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		TotalAmount:   data.TotalAmount,
		Shipping:      fromAddressDomain(data.ShippingAddress),
		PaymentMethod: string(data.PaymentMethod),
		Status:        string(data.Status),
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Items:         make([]model.OrderItemModel, 0, len(data.Items)),
	}
	if data.IdempotencyKey != "" {
		key := data.IdempotencyKey
		orderM.IdempotencyKey = &key
	}

	for i, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:        uuid.New(),
			OrderID:   data.ID,
			Position:  i,
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Unit:      string(item.Unit),
			Total:     item.Total,
		})
	}

	return orderM
}

func toAddressDomain(data model.AddressColumns) entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   data.FullName,
		Phone:      data.Phone,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}

func fromAddressDomain(data entity.ShippingAddress) model.AddressColumns {
	return model.AddressColumns{
		FullName:   data.FullName,
		Phone:      data.Phone,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
	}
}
