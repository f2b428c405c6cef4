package analytics

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(router *gin.RouterGroup, controller Controller) {
	adminEvents := router.Group("/admin/events")
	adminEvents.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "ORGANIZER"))
	{
		adminEvents.GET("/:id/stats", controller.GetEventStats) // GET /api/v1/admin/events/:id/stats
	}
}
