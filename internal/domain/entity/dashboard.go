package entity

import "github.com/shopspring/decimal"

// SellerDashboard summarises a seller's catalog, orders and shipments.
type SellerDashboard struct {
	TotalProducts     int64
	AvailableProducts int64
	LowStockProducts  []*Product
	OrdersByStatus    map[OrderStatus]int64
	TotalOrders       int64
	Revenue           decimal.Decimal // Sum of delivered order totals.
	PendingShipments  int64
	RecentOrders      []*Order
}
