package postgres

import (
	"context"
	"time"

	"localharvest/internal/domain/entity"
	domainerrors "localharvest/internal/domain/errors"
	"localharvest/internal/domain/repository"
	"localharvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("buyer_id = ?", buyerID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

// Save upserts the cart on buyer_id and rewrites its lines. The unique buyer_id
// index keeps two concurrent first-time saves from creating two carts.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	now := time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var upserted struct {
			ID uuid.UUID
		}
		if err := tx.Raw(
			`INSERT INTO carts (id, buyer_id, promo_code, discount_percent, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (buyer_id) DO UPDATE
			 SET promo_code = EXCLUDED.promo_code,
			     discount_percent = EXCLUDED.discount_percent,
			     updated_at = EXCLUDED.updated_at
			 RETURNING id`,
			cart.ID, cart.BuyerID, cart.PromoCode, cart.DiscountPercent, now, now,
		).Scan(&upserted).Error; err != nil {
			return errors.Wrap(err, "failed to upsert cart")
		}
		cartID := upserted.ID
		cart.ID = cartID

		if err := tx.Where("cart_id = ?", cartID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}

		if len(cart.Items) == 0 {
			return nil
		}

		if err := tx.Create(fromCartItemsDomain(cartID, cart.Items)).Error; err != nil {
			return errors.Wrap(err, "failed to insert cart items")
		}

		return nil
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart references a deleted product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	cart.UpdatedAt = now

	return nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	cart := &entity.Cart{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		Items:           make([]entity.CartItem, 0, len(data.Items)),
		PromoCode:       data.PromoCode,
		DiscountPercent: data.DiscountPercent,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	for _, item := range data.Items {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			Price:     item.Price,
			Unit:      entity.Unit(item.Unit),
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
		})
	}

	return cart
}

func fromCartItemsDomain(cartID uuid.UUID, items []entity.CartItem) []model.CartItemModel {
	models := make([]model.CartItemModel, 0, len(items))
	for i, item := range items {
		models = append(models, model.CartItemModel{
			CartID:    cartID,
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Position:  i,
			Name:      item.Name,
			Price:     item.Price,
			Unit:      string(item.Unit),
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
		})
	}

	return models
}
