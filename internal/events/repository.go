package events

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(event *Event) error
	GetByID(id uuid.UUID) (*Event, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Event, error)
	Delete(id uuid.UUID) error
	GetAll(query EventListQuery) ([]Event, int64, error)
	GetByStatus(status EventStatus) ([]Event, error)
	CountTickets(eventID uuid.UUID) (int64, error)
	Exists(id uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Event, error) {
	var event Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Event, error) {
	var event Event
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&event).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&Event{}).Error
}

func (r *repository) GetAll(query EventListQuery) ([]Event, int64, error) {
	var events []Event
	var totalCount int64

	db := r.db.Model(&Event{})

	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}
	if query.VenueID != "" {
		db = db.Where("venue_id = ?", query.VenueID)
	}
	if query.CityID != "" {
		db = db.Where("venue_id IN (SELECT id FROM venues WHERE city_id = ?)", query.CityID)
	}
	if query.Category != "" {
		db = db.Where("category_id = ?", query.Category)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.DateFrom != "" {
		if from, err := time.Parse(time.RFC3339, query.DateFrom); err == nil {
			db = db.Where("start_date >= ?", from)
		}
	}
	if query.DateTo != "" {
		if to, err := time.Parse(time.RFC3339, query.DateTo); err == nil {
			db = db.Where("start_date <= ?", to)
		}
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("start_date ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&events).Error

	return events, totalCount, err
}

func (r *repository) GetByStatus(status EventStatus) ([]Event, error) {
	var events []Event
	err := r.db.Where("status = ?", status).Order("start_date ASC").Find(&events).Error
	return events, err
}

func (r *repository) CountTickets(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("tickets").Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}

func (r *repository) Exists(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&Event{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
