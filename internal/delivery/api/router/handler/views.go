package handler

import (
	"time"

	"localharvest/internal/domain/entity"
	"localharvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string so clients never see float drift.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type userView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	FarmName  string    `json:"farm_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(user *entity.User) *userView {
	return &userView{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		Phone:     user.Phone,
		FarmName:  user.FarmName,
		CreatedAt: user.CreatedAt,
	}
}

type productView struct {
	ID          uuid.UUID `json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProductView(product *entity.Product) *productView {
	return &productView{
		ID:          product.ID,
		SellerID:    product.SellerID,
		Name:        product.Name,
		Description: product.Description,
		Price:       money(product.Price),
		Category:    string(product.Category),
		Quantity:    product.Quantity,
		Unit:        string(product.Unit),
		ImageURL:    product.ImageURL,
		IsAvailable: product.IsAvailable,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, newProductView(product))
	}

	return views
}

type cartItemView struct {
	ProductID uuid.UUID `json:"product_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Unit      string    `json:"unit"`
	ImageURL  string    `json:"image_url,omitempty"`
	Quantity  int       `json:"quantity"`
	LineTotal string    `json:"line_total"`
}

type cartView struct {
	ID              uuid.UUID      `json:"id"`
	Items           []cartItemView `json:"items"`
	ItemCount       int            `json:"item_count"`
	PromoCode       string         `json:"promo_code,omitempty"`
	DiscountPercent string         `json:"discount_percent"`
	Subtotal        string         `json:"subtotal"`
	Discount        string         `json:"discount"`
	Total           string         `json:"total"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func newCartView(cart *entity.Cart) *cartView {
	items := make([]cartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, cartItemView{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			Price:     money(item.Price),
			Unit:      string(item.Unit),
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			LineTotal: money(item.LineTotal()),
		})
	}

	return &cartView{
		ID:              cart.ID,
		Items:           items,
		ItemCount:       cart.ItemCount(),
		PromoCode:       cart.PromoCode,
		DiscountPercent: cart.DiscountPercent.String(),
		Subtotal:        money(cart.Subtotal()),
		Discount:        money(cart.Discount()),
		Total:           money(cart.Total()),
		UpdatedAt:       cart.UpdatedAt,
	}
}

type orderItemView struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	Total     string    `json:"total"`
}

type orderView struct {
	ID              uuid.UUID              `json:"id"`
	DisplayID       string                 `json:"display_id"`
	BuyerID         uuid.UUID              `json:"buyer_id"`
	SellerID        uuid.UUID              `json:"seller_id"`
	Items           []orderItemView        `json:"items"`
	TotalAmount     string                 `json:"total_amount"`
	ShippingAddress entity.ShippingAddress `json:"shipping_address"`
	PaymentMethod   string                 `json:"payment_method"`
	Status          string                 `json:"status"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func newOrderView(order *entity.Order) *orderView {
	items := make([]orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     money(item.Price),
			Quantity:  item.Quantity,
			Unit:      string(item.Unit),
			Total:     money(item.Total),
		})
	}

	return &orderView{
		ID:              order.ID,
		DisplayID:       order.DisplayID,
		BuyerID:         order.BuyerID,
		SellerID:        order.SellerID,
		Items:           items,
		TotalAmount:     money(order.TotalAmount),
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   string(order.PaymentMethod),
		Status:          string(order.Status),
		Notes:           order.Notes,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func newOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views
}

type shipmentView struct {
	ID                   uuid.UUID              `json:"id"`
	DisplayID            string                 `json:"display_id"`
	OrderID              uuid.UUID              `json:"order_id"`
	SellerID             uuid.UUID              `json:"seller_id"`
	BuyerID              uuid.UUID              `json:"buyer_id"`
	CustomerName         string                 `json:"customer_name"`
	Address              entity.ShippingAddress `json:"address"`
	Status               string                 `json:"status"`
	ExpectedDeliveryDate time.Time              `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time             `json:"actual_delivery_date,omitempty"`
	TrackingNumber       string                 `json:"tracking_number,omitempty"`
	Carrier              string                 `json:"carrier,omitempty"`
	Notes                string                 `json:"notes,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

func newShipmentView(shipment *entity.Shipment) *shipmentView {
	return &shipmentView{
		ID:                   shipment.ID,
		DisplayID:            shipment.DisplayID,
		OrderID:              shipment.OrderID,
		SellerID:             shipment.SellerID,
		BuyerID:              shipment.BuyerID,
		CustomerName:         shipment.CustomerName,
		Address:              shipment.Address,
		Status:               string(shipment.Status),
		ExpectedDeliveryDate: shipment.ExpectedDeliveryDate,
		ActualDeliveryDate:   shipment.ActualDeliveryDate,
		TrackingNumber:       shipment.TrackingNumber,
		Carrier:              shipment.Carrier,
		Notes:                shipment.Notes,
		CreatedAt:            shipment.CreatedAt,
		UpdatedAt:            shipment.UpdatedAt,
	}
}

type trackingView struct {
	DisplayID            string     `json:"display_id"`
	OrderRef             string     `json:"order_ref"`
	Status               string     `json:"status"`
	Carrier              string     `json:"carrier,omitempty"`
	TrackingNumber       string     `json:"tracking_number,omitempty"`
	DestinationCity      string     `json:"destination_city"`
	ExpectedDeliveryDate time.Time  `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time `json:"actual_delivery_date,omitempty"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func newTrackingView(view *usecase.TrackingView) *trackingView {
	return &trackingView{
		DisplayID:            view.DisplayID,
		OrderRef:             view.OrderRef,
		Status:               string(view.Status),
		Carrier:              view.Carrier,
		TrackingNumber:       view.TrackingNumber,
		DestinationCity:      view.DestinationCity,
		ExpectedDeliveryDate: view.ExpectedDeliveryDate,
		ActualDeliveryDate:   view.ActualDeliveryDate,
		UpdatedAt:            view.UpdatedAt,
	}
}

type dashboardView struct {
	TotalProducts     int64            `json:"total_products"`
	AvailableProducts int64            `json:"available_products"`
	LowStockProducts  []*productView   `json:"low_stock_products"`
	OrdersByStatus    map[string]int64 `json:"orders_by_status"`
	TotalOrders       int64            `json:"total_orders"`
	Revenue           string           `json:"revenue"`
	PendingShipments  int64            `json:"pending_shipments"`
	RecentOrders      []*orderView     `json:"recent_orders"`
}

func newDashboardView(dashboard *entity.SellerDashboard) *dashboardView {
	byStatus := make(map[string]int64, len(dashboard.OrdersByStatus))
	for status, count := range dashboard.OrdersByStatus {
		byStatus[string(status)] = count
	}

	return &dashboardView{
		TotalProducts:     dashboard.TotalProducts,
		AvailableProducts: dashboard.AvailableProducts,
		LowStockProducts:  newProductViews(dashboard.LowStockProducts),
		OrdersByStatus:    byStatus,
		TotalOrders:       dashboard.TotalOrders,
		Revenue:           money(dashboard.Revenue),
		PendingShipments:  dashboard.PendingShipments,
		RecentOrders:      newOrderViews(dashboard.RecentOrders),
	}
}
