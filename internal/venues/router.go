package venues

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(router *gin.RouterGroup, controller Controller) {
	// Read routes for any console operator
	publicVenues := router.Group("/venues")
	publicVenues.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		publicVenues.GET("", controller.GetVenues)    // GET /api/v1/venues?city_id=&search=
		publicVenues.GET("/:venueId", controller.GetVenue) // GET /api/v1/venues/:venueId
	}

	// Admin routes
	adminVenues := router.Group("/admin/venues")
	adminVenues.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminVenues.POST("", controller.CreateVenue)       // POST /api/v1/admin/venues
		adminVenues.PUT("/:id", controller.UpdateVenue)    // PUT /api/v1/admin/venues/:id
		adminVenues.DELETE("/:id", controller.DeleteVenue) // DELETE /api/v1/admin/venues/:id
	}
}
