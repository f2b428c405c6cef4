package checkin

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCheckInRoutes(router *gin.RouterGroup, controller Controller) {
	checkin := router.Group("/checkin")
	checkin.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		checkin.POST("", controller.Scan)                   // POST /api/v1/checkin
		checkin.DELETE("/session", controller.ResetSession) // DELETE /api/v1/checkin/session
	}
}
