// Package router wires the API handlers to their routes.
package router

import (
	"bazaar/config"
	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler        *handler.OrderHandler
	CartHandler         *handler.CartHandler
	ShopHandler         *handler.ShopHandler
	ProductHandler      *handler.ProductHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	DiagnosticsHandler  *handler.DiagnosticsHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler        *handler.OrderHandler
	cartHandler         *handler.CartHandler
	shopHandler         *handler.ShopHandler
	productHandler      *handler.ProductHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	diagnosticsHandler  *handler.DiagnosticsHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:        params.OrderHandler,
		cartHandler:         params.CartHandler,
		shopHandler:         params.ShopHandler,
		productHandler:      params.ProductHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		diagnosticsHandler:  params.DiagnosticsHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("/shops/:shopId", r.orderHandler.SubmitOrder)
		ordersGroup.GET("/shops/:shopId", r.orderHandler.ListShopOrders)
		ordersGroup.GET("/my", r.orderHandler.ListMyOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)
		ordersGroup.PATCH("/:orderId/approve", r.orderHandler.ApproveOrder)
		ordersGroup.PATCH("/:orderId/decline", r.orderHandler.DeclineOrder)
		ordersGroup.DELETE("/:orderId", r.orderHandler.DeleteOrder)
	}

	cartGroup := apiV1.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("/items", r.cartHandler.Clear)
	}

	shopsGroup := apiV1.Group("/shops")
	{
		shopsGroup.POST("", r.shopHandler.CreateShop)
		shopsGroup.GET("/my", r.shopHandler.ListMyShops)
		shopsGroup.PATCH("/primary", r.shopHandler.SetPrimaryShop)
		shopsGroup.GET("/:id", r.shopHandler.GetShop)
		shopsGroup.PATCH("/:shopId", r.shopHandler.UpdateShop)
		shopsGroup.DELETE("/:shopId", r.shopHandler.DeactivateShop)
		shopsGroup.POST("/:id/follow", r.shopHandler.ToggleFollow)
		shopsGroup.POST("/:id/like", r.shopHandler.ToggleLike)
		shopsGroup.POST("/:id/share", r.shopHandler.Share)
		shopsGroup.GET("/:id/qr", r.shopHandler.GenerateShopQR)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("/shops/:shopId", r.productHandler.CreateProduct)
		productsGroup.GET("/shops/:shopId", r.productHandler.ListShopProducts)
		productsGroup.GET("/:productId", r.productHandler.GetProduct)
		productsGroup.PATCH("/:productId", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:productId", r.productHandler.DeleteProduct)
		productsGroup.POST("/:productId/like", r.productHandler.ToggleLike)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.PATCH("/read-all", r.notificationHandler.MarkAllAsRead)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkAsRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
		notificationsGroup.DELETE("", r.notificationHandler.ClearNotifications)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.RefreshToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

// RegisterTestRoutes mounts the diagnostics routes when testRoutes is enabled.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.config.TestRoutes == nil || !r.config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/ping", r.diagnosticsHandler.Ping)

	authed := testGroup.Group("", r.authMiddleware.Authenticate)
	authed.GET("/whoami", r.diagnosticsHandler.WhoAmI)
	authed.GET("/access/shops/:shopId", r.diagnosticsHandler.ShopAccess)
	authed.GET("/access/orders/:orderId", r.diagnosticsHandler.OrderAccess)
}
