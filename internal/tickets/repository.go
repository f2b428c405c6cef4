package tickets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE USED CANCELLED REFUNDED"`
	Search string `form:"search"`
}

type Repository interface {
	Create(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetByQRCode(ctx context.Context, code string) (*Ticket, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, query TicketListQuery) ([]Ticket, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error)

	// Conditional transitions. Each succeeds only when the row is still
	// in the required source state, so two racing operators cannot both
	// win; the return reports whether this caller's update applied.
	MarkCheckedIn(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time, reason string) (bool, error)
	MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error)

	CreateType(ctx context.Context, tt *TicketType) error
	GetTypeByID(ctx context.Context, id uuid.UUID) (*TicketType, error)
	ListTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) GetByQRCode(ctx context.Context, code string) (*Ticket, error) {
	var ticket Ticket
	if err := r.db.WithContext(ctx).Where("qr_code = ?", code).First(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) ListByEvent(ctx context.Context, eventID uuid.UUID, query TicketListQuery) ([]Ticket, int64, error) {
	var tickets []Ticket
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Ticket{}).Where("event_id = ?", eventID)

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.Search != "" {
		searchTerm := "%" + query.Search + "%"
		db = db.Where("holder_name ILIKE ? OR holder_email ILIKE ? OR qr_code = ?",
			searchTerm, searchTerm, query.Search)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("purchase_date DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&tickets).Error

	return tickets, totalCount, err
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *repository) MarkCheckedIn(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND status = ?", id, StatusActive).
		Updates(map[string]interface{}{
			"status":        StatusUsed,
			"checked_in_at": at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time, reason string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND status = ?", id, StatusActive).
		Updates(map[string]interface{}{
			"status":              StatusCancelled,
			"cancelled_at":        at,
			"cancellation_reason": reason,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *repository) MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("id = ? AND status = ?", id, StatusCancelled).
		Update("status", StatusRefunded)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) CreateType(ctx context.Context, tt *TicketType) error {
	return r.db.WithContext(ctx).Create(tt).Error
}

func (r *repository) GetTypeByID(ctx context.Context, id uuid.UUID) (*TicketType, error) {
	var tt TicketType
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tt).Error; err != nil {
		return nil, err
	}
	return &tt, nil
}

func (r *repository) ListTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	var types []TicketType
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("price ASC").
		Find(&types).Error
	return types, err
}
