package categories

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCategoryRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	publicCategories := router.Group("/categories")
	{
		publicCategories.GET("", controller.GetActiveCategories)          // GET /api/v1/categories - Active categories
		publicCategories.GET("/slug/:slug", controller.GetCategoryBySlug) // GET /api/v1/categories/slug/:slug
	}

	// Admin routes
	adminCategories := router.Group("/admin/categories")
	adminCategories.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminCategories.POST("", controller.CreateCategory)       // POST /api/v1/admin/categories
		adminCategories.GET("", controller.GetAllCategories)      // GET /api/v1/admin/categories
		adminCategories.GET("/:id", controller.GetCategory)       // GET /api/v1/admin/categories/:id
		adminCategories.PUT("/:id", controller.UpdateCategory)    // PUT /api/v1/admin/categories/:id
		adminCategories.DELETE("/:id", controller.DeleteCategory) // DELETE /api/v1/admin/categories/:id
	}
}
