// Package router wires the API handlers onto echo routes.
package router

import (
	"localharvest/internal/delivery/api/middleware"
	"localharvest/internal/delivery/api/router/handler"
	"localharvest/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	ProductHandler   *handler.ProductHandler
	CartHandler      *handler.CartHandler
	OrderHandler     *handler.OrderHandler
	ShipmentHandler  *handler.ShipmentHandler
	DashboardHandler *handler.DashboardHandler
	DeviceHandler    *handler.DeviceHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

type router struct {
	auth      *handler.AuthHandler
	products  *handler.ProductHandler
	cart      *handler.CartHandler
	orders    *handler.OrderHandler
	shipments *handler.ShipmentHandler
	dashboard *handler.DashboardHandler
	devices   *handler.DeviceHandler
	authMW    *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		auth:      params.AuthHandler,
		products:  params.ProductHandler,
		cart:      params.CartHandler,
		orders:    params.OrderHandler,
		shipments: params.ShipmentHandler,
		dashboard: params.DashboardHandler,
		devices:   params.DeviceHandler,
		authMW:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
		authGroup.POST("/logout", r.auth.Logout)
	}

	// Public shipment tracking, reached from the QR code
	e.GET("/track/:displayId", r.shipments.Track)

	apiV1 := e.Group("/api/v1")

	// Public catalog
	apiV1.GET("/products", r.products.ListProducts)
	apiV1.GET("/products/:id", r.products.GetProduct)

	authed := apiV1.Group("", r.authMW.Authenticate)
	authed.GET("/me", r.auth.Me)

	devicesGroup := authed.Group("/devices")
	{
		devicesGroup.POST("", r.devices.RegisterDevice)
		devicesGroup.GET("", r.devices.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.devices.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.devices.DeactivateDevice)
	}

	// Orders and shipments visible to either party
	authed.GET("/orders/:id", r.orders.GetOrder)
	authed.GET("/orders/:id/shipment", r.orders.GetOrderShipment)
	authed.GET("/shipments/:id", r.shipments.GetShipment)
	authed.GET("/shipments/:id/qr", r.shipments.GetTrackingQR)

	buyerOnly := r.authMW.RequireRole(entity.RoleBuyer)

	cartGroup := authed.Group("/cart", buyerOnly)
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.POST("/add", r.cart.AddItem)
		cartGroup.PUT("/items/:productId", r.cart.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cart.RemoveItem)
		cartGroup.DELETE("/clear", r.cart.Clear)
		cartGroup.PUT("/promo", r.cart.ApplyPromo)
	}

	authed.POST("/orders", r.orders.PlaceOrder, buyerOnly)
	authed.GET("/orders", r.orders.ListBuyerOrders, buyerOnly)

	sellerOnly := r.authMW.RequireRole(entity.RoleSeller)

	authed.PATCH("/orders/:id/status", r.orders.UpdateOrderStatus, sellerOnly)
	authed.POST("/shipments", r.shipments.CreateShipment, sellerOnly)
	authed.PATCH("/shipments/:id/status", r.shipments.UpdateShipmentStatus, sellerOnly)

	sellerGroup := authed.Group("/seller", sellerOnly)
	{
		sellerGroup.GET("/products", r.products.ListSellerProducts)
		sellerGroup.POST("/products", r.products.CreateProduct)
		sellerGroup.PUT("/products/:id", r.products.UpdateProduct)
		sellerGroup.DELETE("/products/:id", r.products.DeleteProduct)
		sellerGroup.PATCH("/products/:id/availability", r.products.SetAvailability)
		sellerGroup.GET("/orders", r.orders.ListSellerOrders)
		sellerGroup.GET("/shipments", r.shipments.ListSellerShipments)
		sellerGroup.GET("/dashboard", r.dashboard.GetSellerDashboard)
	}
}
