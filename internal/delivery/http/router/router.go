// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/middleware"
	"github.com/Hritik000/valentine-gifts-hub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CheckoutHandler *handler.CheckoutHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	checkoutHandler *handler.CheckoutHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		checkoutHandler: params.CheckoutHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	// Identity is optional everywhere: guests check out and retrieve
	// orders by order id alone.
	api.Use(r.authMiddleware.ResolveIdentity)
	{
		api.GET("/products", r.catalogHandler.ListProducts)
		api.GET("/products/:id", r.catalogHandler.GetProduct)

		api.POST("/orders", r.checkoutHandler.CreateOrder)
		api.POST("/orders/verify", r.orderHandler.VerifyOrder)
		api.POST("/orders/download", r.orderHandler.Download)

		api.POST("/payments/order", r.checkoutHandler.CreatePaymentOrder)
		api.POST("/payments/verify", r.checkoutHandler.VerifyPayment)
	}
}
