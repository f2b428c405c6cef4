package seats

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	// Seating chart. Staff and above; the check-in desk reads this too.
	venues := router.Group("/venues")
	venues.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		venues.GET("/:venueId/seating", controller.GetVenueSeating) // GET /api/v1/venues/:venueId/seating?event_id=
	}

	// Seat management - Admin only
	adminVenues := router.Group("/admin/venues")
	adminVenues.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminVenues.POST("/:venueId/seats", controller.CreateSeat)          // POST /api/v1/admin/venues/:venueId/seats
		adminVenues.POST("/:venueId/seats/bulk", controller.BulkCreateSeats) // POST /api/v1/admin/venues/:venueId/seats/bulk
	}

	adminSeats := router.Group("/admin/seats")
	adminSeats.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminSeats.GET("/:id", controller.GetSeat)       // GET /api/v1/admin/seats/:id
		adminSeats.PUT("/:id", controller.UpdateSeat)    // PUT /api/v1/admin/seats/:id
		adminSeats.DELETE("/:id", controller.DeleteSeat) // DELETE /api/v1/admin/seats/:id
	}
}
