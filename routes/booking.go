package routes

import (
	"drivio/handlers"
	"drivio/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthRenterMiddleware())
	{
		api.POST("/quote", bh.Quote)
		api.POST("", bh.Create)
		api.POST("/finalize", bh.Finalize)
		api.GET("", bh.List)
		api.GET("/:id", bh.Get)
		api.PATCH("/:id", bh.Edit)
		api.POST("/:id/alternative", bh.ConfirmAlternative)
		api.GET("/:id/cancel-preview", bh.CancelPreview)
		api.POST("/:id/cancel", bh.Cancel)
		api.GET("/:id/qr", bh.PickupQR)
	}
}
