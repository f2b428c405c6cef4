package routes

import (
	"net/http"
	"time"

	"ticketops/internal/analytics"
	"ticketops/internal/auth"
	"ticketops/internal/cancellation"
	"ticketops/internal/categories"
	"ticketops/internal/checkin"
	"ticketops/internal/cities"
	"ticketops/internal/events"
	"ticketops/internal/notifications"
	"ticketops/internal/orders"
	"ticketops/internal/seats"
	"ticketops/internal/shared/config"
	"ticketops/internal/shared/database"
	"ticketops/internal/tickets"
	"ticketops/internal/venues"
	"ticketops/pkg/cache"
	"ticketops/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires repositories, services and controllers together and
// registers every route group.
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher tickets.EventPublisher
	log       *logger.Logger
}

func NewRouter(cfg *config.Config, db *database.DB, publisher tickets.EventPublisher, log *logger.Logger) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		log:       log,
	}
}

func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAPIRoutes(api)
	}
}

func (r *Router) setupAPIRoutes(api *gin.RouterGroup) {
	pg := r.db.GetPostgreSQL()
	cacheService := cache.NewService(r.db.GetRedisClient())

	// Auth
	authService := auth.NewService(auth.NewRepository(pg), r.config)
	auth.SetupAuthRoutes(api, auth.NewController(authService))

	// Reference data
	cityService := cities.NewService(cities.NewRepository(pg), cacheService)
	cities.SetupCityRoutes(api, cities.NewController(cityService))

	categoryService := categories.NewService(categories.NewRepository(pg))
	categories.SetupCategoryRoutes(api, categories.NewController(categoryService))

	// Venues and seating
	venueRepo := venues.NewRepository(pg)
	venueService := venues.NewService(venueRepo, cacheService)
	venues.SetupVenueRoutes(api, venues.NewController(venueService))

	seatRepo := seats.NewRepository(pg)
	seatService := seats.NewService(seatRepo, venueRepo, cacheService)
	seats.SetupSeatRoutes(api, seats.NewController(seatService))

	// Events
	eventRepo := events.NewRepository(pg)
	eventService := events.NewService(eventRepo)
	events.SetupEventRoutes(api, events.NewController(eventService))

	// Ticket lifecycle
	refundService := cancellation.NewService(cancellation.NewRepository(pg))
	ticketService := tickets.NewService(
		tickets.NewRepository(pg),
		orders.NewRepository(pg),
		eventRepo,
		seatRepo,
		refundService,
		r.publisher,
		r.log,
	)
	tickets.SetupTicketRoutes(api, tickets.NewController(ticketService))

	// Check-in scanning
	checkInManager := checkin.NewManager(ticketService,
		r.config.CheckIn.DebounceWindow, r.config.CheckIn.DisplayDelay, r.log)
	checkin.SetupCheckInRoutes(api, checkin.NewController(checkInManager))

	// Notifications feed
	notificationService := notifications.NewService(notifications.NewRepository(pg))
	notifications.SetupNotificationRoutes(api, notifications.NewController(notificationService))

	// Analytics
	analyticsService := analytics.NewService(analytics.NewRepository(pg), eventRepo, cacheService)
	analytics.SetupAnalyticsRoutes(api, analytics.NewController(analyticsService))
}

func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "ticketops",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "ticketops",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
