package postgres

import (
	"context"
	"strings"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDsForUpdate reads from the primary and takes row locks in id order,
// so concurrent checkouts touching the same products queue instead of deadlocking.
func (repo *productRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Product, error) {
	products := make(map[uuid.UUID]*entity.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id IN ?", ids).
		Order("id").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	for _, productM := range productModels {
		products[productM.ID] = toProductDomain(productM)
	}

	return products, nil
}

func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ? AND quantity > 0", true)
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid product data")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid seller reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":         product.Name,
			"description":  product.Description,
			"price":        product.Price,
			"category":     string(product.Category),
			"quantity":     product.Quantity,
			"unit":         string(product.Unit),
			"image_url":    product.ImageURL,
			"is_available": product.IsAvailable,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("invalid product data")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WithDetails("product is still referenced")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_available", available)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock only touches the row while quantity >= n, so stock never goes negative.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (int, error) {
	var remaining int

	result := repo.db.WithContext(ctx).Raw(
		`UPDATE products SET quantity = quantity - ?, updated_at = NOW()
		 WHERE id = ? AND quantity >= ?
		 RETURNING quantity`,
		quantity, id, quantity,
	).Scan(&remaining)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrInsufficientStock
	}

	return remaining, nil
}

func (repo *productRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, int64, error) {
	var counts struct {
		Total     int64
		Available int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_available AND quantity > 0) AS available").
		Where("seller_id = ?", sellerID).
		Scan(&counts).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count seller products")
	}

	return counts.Total, counts.Available, nil
}

func (repo *productRepository) FindLowStock(ctx context.Context, sellerID uuid.UUID, threshold int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ? AND quantity <= ?", sellerID, threshold).
		Order("quantity ASC, name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	return toProductDomains(productModels), nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    entity.Category(data.Category),
		Quantity:    data.Quantity,
		Unit:        entity.Unit(data.Unit),
		ImageURL:    data.ImageURL,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    string(data.Category),
		Quantity:    data.Quantity,
		Unit:        string(data.Unit),
		ImageURL:    data.ImageURL,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
