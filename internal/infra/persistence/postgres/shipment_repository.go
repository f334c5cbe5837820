package postgres

import (
	"context"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const shipmentOrderIndex = "idx_shipments_order_id"

type shipmentRepository struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{db: db}
}

func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		if isUniqueViolationOn(err, shipmentOrderIndex) {
			return repository.ErrDuplicateShipment
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("shipment references a missing order")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid shipment data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt
	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

func (repo *shipmentRepository) Update(ctx context.Context, shipment *entity.Shipment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ?", shipment.ID).
		Updates(map[string]any{
			"status":               string(shipment.Status),
			"actual_delivery_date": shipment.ActualDeliveryDate,
			"tracking_number":      shipment.TrackingNumber,
			"carrier":              shipment.Carrier,
			"notes":                shipment.Notes,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

func (repo *shipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *shipmentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Shipment, error) {
	return repo.findOne(ctx, "order_id = ?", orderID)
}

func (repo *shipmentRepository) FindByDisplayID(ctx context.Context, displayID string) (*entity.Shipment, error) {
	return repo.findOne(ctx, "display_id = ?", displayID)
}

func (repo *shipmentRepository) findOne(ctx context.Context, where string, arg any) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).Where(where, arg).First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment")
	}

	return toShipmentDomain(&shipmentM), nil
}

func (repo *shipmentRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]*entity.Shipment, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("seller_id = ?", sellerID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count shipments")
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * pageSize
	}

	var shipmentModels []*model.ShipmentModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&shipmentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list shipments")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentModels))
	for _, shipmentM := range shipmentModels {
		shipments = append(shipments, toShipmentDomain(shipmentM))
	}

	return shipments, total, nil
}

func (repo *shipmentRepository) CountOpenBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("seller_id = ? AND status NOT IN ?", sellerID, []string{
			string(entity.ShipmentStatusDelivered),
			string(entity.ShipmentStatusCancelled),
		}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open shipments")
	}

	return count, nil
}

func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	return &entity.Shipment{
		ID:                   data.ID,
		DisplayID:            data.DisplayID,
		OrderID:              data.OrderID,
		SellerID:             data.SellerID,
		BuyerID:              data.BuyerID,
		CustomerName:         data.CustomerName,
		Address:              toAddressDomain(data.Address),
		Status:               entity.ShipmentStatus(data.Status),
		ExpectedDeliveryDate: data.ExpectedDeliveryDate,
		ActualDeliveryDate:   data.ActualDeliveryDate,
		TrackingNumber:       data.TrackingNumber,
		Carrier:              data.Carrier,
		Notes:                data.Notes,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data.ID == uuid.Nil {
		data.ID = uuid.New()
	}

	return &model.ShipmentModel{
		ID:                   data.ID,
		DisplayID:            data.DisplayID,
		OrderID:              data.OrderID,
		SellerID:             data.SellerID,
		BuyerID:              data.BuyerID,
		CustomerName:         data.CustomerName,
		Address:              fromAddressDomain(data.Address),
		Status:               string(data.Status),
		ExpectedDeliveryDate: data.ExpectedDeliveryDate,
		ActualDeliveryDate:   data.ActualDeliveryDate,
		TrackingNumber:       data.TrackingNumber,
		Carrier:              data.Carrier,
		Notes:                data.Notes,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
