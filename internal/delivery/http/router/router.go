// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"loomtrack/internal/delivery/http/middleware"
	"loomtrack/internal/delivery/http/router/handler"
	"loomtrack/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	paymentHandler *handler.PaymentHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		paymentHandler: params.PaymentHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Session cookie issuance and teardown
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/jwt", r.authHandler.IssueToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Users: open registration and role lookup, admin-only moderation
	userGroup := api.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("/role/:email", r.userHandler.GetRoleByEmail)

		adminUsers := userGroup.Group("",
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
		adminUsers.GET("", r.userHandler.ListUsers)
		adminUsers.PATCH("/role/:id", r.userHandler.ChangeRole)
		adminUsers.PATCH("/suspend/:id", r.userHandler.SuspendUser)
		adminUsers.PATCH("/status/:id", r.userHandler.SetStatus)
	}

	// Products: public reads, guarded writes
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)

		productWrites := productGroup.Group("",
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin),
			r.authMiddleware.RequireActiveAccount,
		)
		productWrites.POST("", r.productHandler.CreateProduct)
		productWrites.PUT("/:id", r.productHandler.UpdateProduct)
		productWrites.PATCH("/:id", r.productHandler.UpdateProduct)
		productWrites.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	// Orders: every route is authenticated; fine-grained ownership and
	// lifecycle rules live in the usecase layer.
	orderGroup := api.Group("/orders", r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder,
			r.authMiddleware.RequireRole(entity.RoleBuyer),
			r.authMiddleware.RequireActiveAccount,
		)
		orderGroup.GET("/my-orders", r.orderHandler.MyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/pending", r.orderHandler.PendingOrders,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin),
		)
		orderGroup.GET("/approved", r.orderHandler.ApprovedOrders,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin),
		)
		orderGroup.GET("", r.orderHandler.AllOrders,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		)
		orderGroup.PATCH("/approve/:id", r.orderHandler.ApproveOrder,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin),
			r.authMiddleware.RequireActiveAccount,
		)
		orderGroup.PATCH("/reject/:id", r.orderHandler.RejectOrder,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin),
			r.authMiddleware.RequireActiveAccount,
		)
		orderGroup.PATCH("/cancel/:id", r.orderHandler.CancelOrder,
			r.authMiddleware.RequireActiveAccount,
		)
		orderGroup.PATCH("/update-tracking/:id", r.orderHandler.UpdateTracking,
			r.authMiddleware.RequireRole(entity.RoleManager, entity.RoleAdmin),
			r.authMiddleware.RequireActiveAccount,
		)
		orderGroup.PATCH("/status/:id", r.orderHandler.MarkPaid,
			r.authMiddleware.RequireActiveAccount,
		)
	}

	// Payments
	api.POST("/create-payment-intent", r.paymentHandler.CreatePaymentIntent,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireActiveAccount,
	)

	// Contact form
	api.POST("/contact", r.contactHandler.SubmitMessage)
}
