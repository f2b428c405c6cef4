package main

import (
	"fmt"
	"log"
	"time"

	"ticketops/internal/categories"
	"ticketops/internal/cities"
	"ticketops/internal/events"
	"ticketops/internal/orders"
	"ticketops/internal/seats"
	"ticketops/internal/shared/config"
	"ticketops/internal/shared/database"
	"ticketops/internal/tickets"
	"ticketops/internal/users"
	"ticketops/internal/venues"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database with one venue's seating, a pair of
// events and enough tickets to exercise the check-in desk.
type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting database seeder...")

	cfg := config.Load()
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.MigrateConstraints(db.GetPostgreSQL()); err != nil {
		log.Fatalf("Failed to apply constraints: %v", err)
	}

	seeder := &Seeder{db: db}

	if err := seeder.Clean(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	if err := seeder.Seed(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Seeding completed.")
}

// Clean truncates all tables, children first.
func (s *Seeder) Clean() error {
	tables := []string{
		"notifications",
		"refunds",
		"tickets",
		"ticket_types",
		"orders",
		"events",
		"seats",
		"venues",
		"categories",
		"cities",
		"users",
	}
	pg := s.db.GetPostgreSQL()
	for _, table := range tables {
		if err := pg.Exec("TRUNCATE TABLE " + table + " CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (s *Seeder) Seed() error {
	pg := s.db.GetPostgreSQL()

	hash := func(password string) string {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return string(hashed)
	}

	// Operators
	admin := users.User{ID: uuid.New(), Username: "admin", FullName: "Admin User",
		Email: "admin@ticketops.local", Password: hash("admin123"), Role: users.RoleAdmin}
	organizer := users.User{ID: uuid.New(), Username: "organizer", FullName: "Olivia Organizer",
		Email: "organizer@ticketops.local", Password: hash("organizer123"), Role: users.RoleOrganizer}
	staff := users.User{ID: uuid.New(), Username: "gate1", FullName: "Gate One Staff",
		Email: "gate1@ticketops.local", Password: hash("staff123"), Role: users.RoleStaff}
	holder := users.User{ID: uuid.New(), Username: "asha", FullName: "Asha Rao",
		Email: "asha@example.com", Password: hash("holder123"), Role: users.RoleStaff}
	if err := pg.Create([]*users.User{&admin, &organizer, &staff, &holder}).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Reference data
	city := cities.City{ID: uuid.New(), Name: "Bengaluru", State: "Karnataka", Country: "India", IsActive: true}
	if err := pg.Create(&city).Error; err != nil {
		return fmt.Errorf("failed to seed city: %w", err)
	}

	music := categories.Category{ID: uuid.New(), Name: "Music", Slug: "music", IsActive: true, CreatedBy: admin.ID}
	theatre := categories.Category{ID: uuid.New(), Name: "Theatre", Slug: "theatre", IsActive: true, CreatedBy: admin.ID}
	if err := pg.Create([]*categories.Category{&music, &theatre}).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	// Venue with a three-section seat plan. Labels mix digits and text
	// so natural ordering is visible in the seat map.
	venue := venues.Venue{ID: uuid.New(), Name: "Riverside Hall", Address: "12 Riverside Road",
		CityID: city.ID, Capacity: 360, IsActive: true}
	if err := pg.Create(&venue).Error; err != nil {
		return fmt.Errorf("failed to seed venue: %w", err)
	}

	var seatPlan []seats.Seat
	for _, section := range []string{"Arena", "Balcony", "Gallery"} {
		for row := 1; row <= 12; row++ {
			for number := 1; number <= 10; number++ {
				seatPlan = append(seatPlan, seats.Seat{
					ID:          uuid.New(),
					VenueID:     venue.ID,
					SectionName: section,
					RowName:     fmt.Sprintf("Row %d", row),
					SeatNumber:  fmt.Sprintf("%d", number),
				})
			}
		}
	}
	if err := pg.CreateInBatches(seatPlan, 500).Error; err != nil {
		return fmt.Errorf("failed to seed seats: %w", err)
	}

	// Events: one next week, one long past.
	nextWeek := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Hour)
	nextWeekEnd := nextWeek.Add(3 * time.Hour)
	lastMonth := time.Now().Add(-30 * 24 * time.Hour).Truncate(time.Hour)
	lastMonthEnd := lastMonth.Add(3 * time.Hour)

	concert := events.Event{ID: uuid.New(), Name: "Summer Gala", Description: "Season opening concert",
		VenueID: venue.ID, CategoryID: &music.ID, StartDate: nextWeek, EndDate: &nextWeekEnd,
		Status: events.StatusUpcoming, CreatedBy: organizer.ID}
	play := events.Event{ID: uuid.New(), Name: "Winter Tale", Description: "Stage adaptation",
		VenueID: venue.ID, CategoryID: &theatre.ID, StartDate: lastMonth, EndDate: &lastMonthEnd,
		Status: events.StatusCompleted, CreatedBy: organizer.ID}
	if err := pg.Create([]*events.Event{&concert, &play}).Error; err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	general := tickets.TicketType{ID: uuid.New(), EventID: concert.ID, Name: "General",
		Price: decimal.NewFromInt(1000)}
	premium := tickets.TicketType{ID: uuid.New(), EventID: concert.ID, Name: "Premium",
		Price: decimal.NewFromInt(2500)}
	if err := pg.Create([]*tickets.TicketType{&general, &premium}).Error; err != nil {
		return fmt.Errorf("failed to seed ticket types: %w", err)
	}

	// One completed order holding three seats, one pending order holding
	// one, so the seat map shows SOLD and RESERVED.
	completed := orders.Order{ID: uuid.New(), UserID: holder.ID, EventID: concert.ID,
		OrderRef: "ORD-1001", TotalAmount: decimal.NewFromInt(4500), Status: orders.StatusCompleted}
	pending := orders.Order{ID: uuid.New(), UserID: holder.ID, EventID: concert.ID,
		OrderRef: "ORD-1002", TotalAmount: decimal.NewFromInt(1000), Status: orders.StatusPending}
	if err := pg.Create([]*orders.Order{&completed, &pending}).Error; err != nil {
		return fmt.Errorf("failed to seed orders: %w", err)
	}

	seatTickets := []*tickets.Ticket{
		{ID: uuid.New(), EventID: concert.ID, TicketTypeID: premium.ID, OrderID: completed.ID,
			UserID: holder.ID, SeatID: &seatPlan[0].ID, Status: tickets.StatusActive,
			QRCode: "QR-456", HolderName: holder.FullName, HolderEmail: holder.Email,
			PurchaseDate: time.Now().Add(-72 * time.Hour)},
		{ID: uuid.New(), EventID: concert.ID, TicketTypeID: general.ID, OrderID: completed.ID,
			UserID: holder.ID, SeatID: &seatPlan[1].ID, Status: tickets.StatusActive,
			QRCode: "QR-457", HolderName: holder.FullName, HolderEmail: holder.Email,
			PurchaseDate: time.Now().Add(-72 * time.Hour)},
		{ID: uuid.New(), EventID: concert.ID, TicketTypeID: general.ID, OrderID: completed.ID,
			UserID: holder.ID, SeatID: &seatPlan[2].ID, Status: tickets.StatusActive,
			QRCode: "QR-458", HolderName: holder.FullName, HolderEmail: holder.Email,
			PurchaseDate: time.Now().Add(-72 * time.Hour)},
		{ID: uuid.New(), EventID: concert.ID, TicketTypeID: general.ID, OrderID: pending.ID,
			UserID: holder.ID, SeatID: &seatPlan[3].ID, Status: tickets.StatusActive,
			QRCode: "QR-459", HolderName: holder.FullName, HolderEmail: holder.Email,
			PurchaseDate: time.Now().Add(-2 * time.Hour)},
	}
	if err := pg.Create(seatTickets).Error; err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}

	fmt.Printf("Seeded %d seats, 2 events, 4 tickets (scan QR-456 at the gate)\n", len(seatPlan))
	return nil
}
