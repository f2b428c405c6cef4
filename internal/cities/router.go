package cities

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCityRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes
	publicCities := router.Group("/cities")
	{
		publicCities.GET("", controller.GetActiveCities) // GET /api/v1/cities - Active cities for filters
		publicCities.GET("/:id", controller.GetCity)     // GET /api/v1/cities/:id - City by ID
	}

	// Admin routes
	adminCities := router.Group("/admin/cities")
	adminCities.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminCities.POST("", controller.CreateCity)       // POST /api/v1/admin/cities - Create city
		adminCities.GET("", controller.GetAllCities)      // GET /api/v1/admin/cities - All cities incl. inactive
		adminCities.PUT("/:id", controller.UpdateCity)    // PUT /api/v1/admin/cities/:id - Update city
		adminCities.DELETE("/:id", controller.DeleteCity) // DELETE /api/v1/admin/cities/:id - Delete city
	}
}
