// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthPath is the liveness endpoint, exempt from authentication and access logs.
const HealthPath = "/health"

type RouterParams struct {
	fx.In

	HealthHandler             *handler.HealthHandler
	AuthHandler               *handler.AuthHandler
	UserHandler               *handler.UserHandler
	AddressHandler            *handler.AddressHandler
	ProductHandler            *handler.ProductHandler
	CartHandler               *handler.CartHandler
	RatingHandler             *handler.RatingHandler
	ProductTransactionHandler *handler.ProductTransactionHandler
	TransactionHandler        *handler.TransactionHandler
	AuthMiddleware            *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// resourceHandler is the index/store/show/update/destroy family every resource exposes.
type resourceHandler interface {
	Index(c echo.Context) error
	Store(c echo.Context) error
	Show(c echo.Context) error
	Update(c echo.Context) error
	Destroy(c echo.Context) error
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET(HealthPath, r.params.HealthHandler.Health)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout, r.params.AuthMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.params.AuthMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/carts/details", r.params.CartHandler.Details)
	apiV1.GET("/transactions/:id/invoice-qr", r.params.TransactionHandler.InvoiceQR)

	registerResource(apiV1, "/addresses", r.params.AddressHandler)
	registerResource(apiV1, "/carts", r.params.CartHandler)
	registerResource(apiV1, "/products", r.params.ProductHandler)
	registerResource(apiV1, "/ratings", r.params.RatingHandler)
	registerResource(apiV1, "/product-transactions", r.params.ProductTransactionHandler)
	registerResource(apiV1, "/transactions", r.params.TransactionHandler)
	registerResource(apiV1, "/users", r.params.UserHandler)
}

func registerResource(g *echo.Group, path string, h resourceHandler) {
	rg := g.Group(path)
	rg.GET("", h.Index)
	rg.POST("", h.Store)
	rg.GET("/:id", h.Show)
	rg.PATCH("/:id", h.Update)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Destroy)
}
