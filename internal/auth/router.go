package auth

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup, controller *Controller) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", controller.Login)          // POST /api/v1/auth/login
		auth.POST("/refresh", controller.RefreshToken) // POST /api/v1/auth/refresh

		protected := auth.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.PUT("/change-password", controller.ChangePassword) // PUT /api/v1/auth/change-password
			protected.GET("/me", controller.GetMe)                       // GET /api/v1/auth/me
		}

		// Operator accounts are provisioned by admins, not self-service.
		admin := auth.Group("")
		admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
		{
			admin.POST("/register", controller.Register) // POST /api/v1/auth/register
		}
	}
}
