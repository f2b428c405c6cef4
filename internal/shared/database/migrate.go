package database

import (
	"ticketops/internal/cancellation"
	"ticketops/internal/categories"
	"ticketops/internal/cities"
	"ticketops/internal/events"
	"ticketops/internal/notifications"
	"ticketops/internal/orders"
	"ticketops/internal/seats"
	"ticketops/internal/tickets"
	"ticketops/internal/users"
	"ticketops/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&cities.City{},
		&categories.Category{},
		&venues.Venue{},
		&seats.Seat{},
		&events.Event{},
		&orders.Order{},
		&tickets.TicketType{},
		&tickets.Ticket{},
		&cancellation.Refund{},
		&notifications.Notification{},
	)
}
