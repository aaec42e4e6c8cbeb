package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mega-automotives/mega_backend/controllers"
	"github.com/mega-automotives/mega_backend/middleware"
	"github.com/mega-automotives/mega_backend/models"
	"github.com/mega-automotives/mega_backend/services"
)

// RegisterPaymentRoutes registers all payment-related routes
func RegisterPaymentRoutes(e *echo.Echo, db *mongo.Client, paystack *services.PaystackService, email *services.EmailService) {
	paymentController := controllers.NewPaymentController(db, paystack, email)

	// Payer-facing payment routes
	paymentGroup := e.Group("/api/payments")
	paymentGroup.Use(middleware.JWTMiddleware())

	paymentGroup.GET("", paymentController.GetMyPayments)
	paymentGroup.POST("/initialize", paymentController.InitializePayment)
	paymentGroup.GET("/verify/:reference", paymentController.VerifyPayment)

	// Administrative payment routes
	adminGroup := e.Group("/api/admin/payments")
	adminGroup.Use(middleware.JWTMiddleware())
	adminGroup.Use(middleware.RequireRole(models.RoleAdministrator))

	adminGroup.GET("", paymentController.GetPayments)
	adminGroup.GET("/search", paymentController.SearchPaymentsByReference)
	adminGroup.GET("/user/:id", paymentController.GetPaymentsByUser)
	adminGroup.GET("/:id", paymentController.GetPayment)
	adminGroup.PUT("/:id/status", paymentController.UpdatePaymentStatus)
	adminGroup.DELETE("/:id", paymentController.DeletePayment)
}
