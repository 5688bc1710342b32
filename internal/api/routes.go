package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travel-booking-service/internal/metrics"
)

func SetupRoutes(r *gin.Engine, handler *Handler) {
	r.Use(metrics.Middleware)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.GET("/inventory/:modality", handler.ListInventory)

		bookings := v1.Group("/bookings")
		bookings.Use(RequireAuth)
		{
			bookings.POST("", handler.CreateBooking)
			bookings.GET("", handler.ListBookings)
			bookings.GET("/:id", handler.GetBooking)
			bookings.POST("/:id/cancel", handler.CancelBooking)
		}
	}
}
