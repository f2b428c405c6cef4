package seats

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seatOccupancy is one seat's live ticket state for a given event,
// produced by the derivation query below.
type seatOccupancy struct {
	SeatID       uuid.UUID `gorm:"column:seat_id"`
	TicketStatus string    `gorm:"column:ticket_status"`
	OrderStatus  string    `gorm:"column:order_status"`
}

type Repository interface {
	Create(ctx context.Context, seat *Seat) error
	CreateBulk(ctx context.Context, seats []Seat) error
	GetByID(ctx context.Context, id uuid.UUID) (*Seat, error)
	GetByVenue(ctx context.Context, venueID uuid.UUID) ([]Seat, error)
	GetByLocation(ctx context.Context, venueID uuid.UUID, section, row, number string) (*Seat, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Seat, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountTickets(ctx context.Context, seatID uuid.UUID) (int64, error)
	GetOccupancyForEvent(ctx context.Context, venueID, eventID uuid.UUID) (map[uuid.UUID]SeatStatus, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, seat *Seat) error {
	return r.db.WithContext(ctx).Create(seat).Error
}

func (r *repository) CreateBulk(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(seats, 500).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Seat, error) {
	var seat Seat
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&seat).Error; err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) GetByVenue(ctx context.Context, venueID uuid.UUID) ([]Seat, error) {
	var seats []Seat
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Find(&seats).Error
	return seats, err
}

func (r *repository) GetByLocation(ctx context.Context, venueID uuid.UUID, section, row, number string) (*Seat, error) {
	var seat Seat
	err := r.db.WithContext(ctx).
		Where("venue_id = ? AND section_name = ? AND row_name = ? AND seat_number = ?",
			venueID, section, row, number).
		First(&seat).Error
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Seat, error) {
	var seat Seat
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&seat).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&seat).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&seat).Error; err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Seat{}).Error
}

func (r *repository) CountTickets(ctx context.Context, seatID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("tickets").
		Where("seat_id = ?", seatID).
		Count(&count).Error
	return count, err
}

// GetOccupancyForEvent derives per-seat status for one event from live
// tickets and their orders. Seats without a live ticket are absent from
// the result and read as AVAILABLE.
func (r *repository) GetOccupancyForEvent(ctx context.Context, venueID, eventID uuid.UUID) (map[uuid.UUID]SeatStatus, error) {
	var rows []seatOccupancy
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("tickets.seat_id AS seat_id, tickets.status AS ticket_status, orders.status AS order_status").
		Joins("JOIN orders ON tickets.order_id = orders.id").
		Joins("JOIN seats ON tickets.seat_id = seats.id").
		Where("tickets.event_id = ? AND seats.venue_id = ?", eventID, venueID).
		Where("tickets.seat_id IS NOT NULL").
		Where("tickets.status IN ?", []string{"ACTIVE", "USED"}).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	occupancy := make(map[uuid.UUID]SeatStatus, len(rows))
	for _, row := range rows {
		switch row.OrderStatus {
		case "COMPLETED":
			occupancy[row.SeatID] = StatusSold
		case "PENDING":
			// A seat never downgrades from SOLD to RESERVED.
			if occupancy[row.SeatID] != StatusSold {
				occupancy[row.SeatID] = StatusReserved
			}
		}
	}
	return occupancy, nil
}
