package events

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(router *gin.RouterGroup, controller Controller) {
	// Read routes for any console operator
	publicEvents := router.Group("/events")
	publicEvents.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		publicEvents.GET("", controller.GetEvents)    // GET /api/v1/events?venue_id=&status=
		publicEvents.GET("/:id", controller.GetEvent) // GET /api/v1/events/:id
	}

	// Management routes for admins and organizers
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "ORGANIZER"))
	{
		adminEvents.POST("", controller.CreateEvent)            // POST /api/v1/admin/events
		adminEvents.PUT("/:id", controller.UpdateEvent)         // PUT /api/v1/admin/events/:id
		adminEvents.POST("/:id/cancel", controller.CancelEvent) // POST /api/v1/admin/events/:id/cancel
		adminEvents.DELETE("/:id", controller.DeleteEvent)      // DELETE /api/v1/admin/events/:id
	}
}
