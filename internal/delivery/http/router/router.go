// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coderr/internal/delivery/http/middleware"
	"coderr/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	OfferHandler   *handler.OfferHandler
	OrderHandler   *handler.OrderHandler
	ReviewHandler  *handler.ReviewHandler
	InfoHandler    *handler.InfoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	offerHandler   *handler.OfferHandler
	orderHandler   *handler.OrderHandler
	reviewHandler  *handler.ReviewHandler
	infoHandler    *handler.InfoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		offerHandler:   params.OfferHandler,
		orderHandler:   params.OrderHandler,
		reviewHandler:  params.ReviewHandler,
		infoHandler:    params.InfoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	api.POST("/registration", r.userHandler.Register)
	api.POST("/login", r.userHandler.Login)

	// Public platform statistics
	api.GET("/base-info", r.infoHandler.BaseInfo)

	// Profile routes; reads are public, writes require authentication
	api.GET("/profile/:pk", r.profileHandler.GetProfile)
	api.PATCH("/profile/:pk", r.profileHandler.UpdateProfile, r.authMiddleware.Authenticate)
	api.GET("/profiles/business", r.profileHandler.ListBusinessProfiles)
	api.GET("/profiles/customer", r.profileHandler.ListCustomerProfiles)

	// Offer routes; reads are public, writes require authentication
	api.GET("/offers", r.offerHandler.ListOffers)
	api.POST("/offers", r.offerHandler.CreateOffer, r.authMiddleware.Authenticate)
	api.GET("/offers/:pk", r.offerHandler.GetOffer)
	api.PATCH("/offers/:pk", r.offerHandler.UpdateOffer, r.authMiddleware.Authenticate)
	api.DELETE("/offers/:pk", r.offerHandler.DeleteOffer, r.authMiddleware.Authenticate)
	api.GET("/offerdetails/:pk", r.offerHandler.GetOfferDetail)

	// Order routes, all behind authentication
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.PATCH("/:pk", r.orderHandler.UpdateOrderStatus)
	}
	api.GET("/order-count/:business_user_id", r.orderHandler.CountInProgress)
	api.GET("/completed-order-count/:business_user_id", r.orderHandler.CountCompleted)

	// Review routes; the listing is public, writes require authentication
	api.GET("/reviews", r.reviewHandler.ListReviews)
	api.POST("/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
	api.PATCH("/reviews/:pk", r.reviewHandler.UpdateReview, r.authMiddleware.Authenticate)
	api.DELETE("/reviews/:pk", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)
}
