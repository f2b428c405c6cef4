package tickets

import (
	"ticketops/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupTicketRoutes(router *gin.RouterGroup, controller Controller) {
	// QR lookup and check-in for scanning operators
	tickets := router.Group("/tickets")
	tickets.Use(middleware.JWTAuth(), middleware.RequireStaff())
	{
		tickets.GET("/qr/:code", controller.GetTicketByQRCode) // GET /api/v1/tickets/qr/:code
	}

	// Lifecycle management for admins and organizers
	adminTickets := router.Group("/admin/tickets")
	adminTickets.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "ORGANIZER"))
	{
		adminTickets.POST("/:id/cancel", controller.CancelTicket)        // POST /api/v1/admin/tickets/:id/cancel
		adminTickets.POST("/:id/refund/settle", controller.SettleRefund) // POST /api/v1/admin/tickets/:id/refund/settle
	}

	adminEventTickets := router.Group("/admin/events")
	adminEventTickets.Use(middleware.JWTAuth(), middleware.RequireRoles("ADMIN", "ORGANIZER"))
	{
		adminEventTickets.GET("/:id/tickets", controller.GetEventTickets) // GET /api/v1/admin/events/:id/tickets
	}
}
