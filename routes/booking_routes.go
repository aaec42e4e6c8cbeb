package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mega-automotives/mega_backend/controllers"
	"github.com/mega-automotives/mega_backend/middleware"
	"github.com/mega-automotives/mega_backend/models"
	"github.com/mega-automotives/mega_backend/services"
)

// RegisterBookingRoutes registers all booking-related routes
func RegisterBookingRoutes(e *echo.Echo, db *mongo.Client, email *services.EmailService) {
	bookingController := controllers.NewBookingController(db, email)

	// Owner-facing booking routes
	bookingGroup := e.Group("/api/bookings")
	bookingGroup.Use(middleware.JWTMiddleware())
	bookingGroup.Use(middleware.RequireRole(models.RoleCustomer))

	bookingGroup.POST("", bookingController.CreateBooking)
	bookingGroup.GET("", bookingController.GetMyBookings)
	bookingGroup.GET("/:id", bookingController.GetMyBooking)
	bookingGroup.PUT("/:id", bookingController.UpdateBooking)
	bookingGroup.DELETE("/:id", bookingController.DeleteMyBooking)

	// Staff booking routes: listings, search, status transitions, deletion
	staffGroup := e.Group("/api/admin/bookings")
	staffGroup.Use(middleware.JWTMiddleware())
	staffGroup.Use(middleware.RequireRole(models.StaffRoles...))

	staffGroup.GET("", bookingController.GetBookings)
	staffGroup.GET("/search", bookingController.SearchBookingsByOwner)
	staffGroup.GET("/status/:status", bookingController.GetBookingsByStatus)
	staffGroup.GET("/owner/:id", bookingController.GetBookingsByOwner)
	staffGroup.GET("/:id", bookingController.GetBookingByID)
	staffGroup.PUT("/:id/status", bookingController.UpdateBookingStatus)
	staffGroup.DELETE("/:id", bookingController.DeleteBooking)
}
