package notifications

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(router *gin.RouterGroup, controller Controller) {
	notifications := router.Group("/notifications")
	notifications.Use(middleware.JWTAuth())
	{
		notifications.GET("", controller.GetNotifications)   // GET /api/v1/notifications?unread=true
		notifications.POST("/:id/read", controller.MarkRead) // POST /api/v1/notifications/:id/read
	}
}
