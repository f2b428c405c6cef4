package venues

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	GetAll(ctx context.Context, query VenueListQuery) ([]Venue, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	CountSeats(ctx context.Context, venueID uuid.UUID) (int64, error)
	CountEvents(ctx context.Context, venueID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) GetAll(ctx context.Context, query VenueListQuery) ([]Venue, int64, error) {
	var venues []Venue
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Venue{})

	if query.CityID != "" {
		db = db.Where("city_id = ?", query.CityID)
	}
	if query.Search != "" {
		searchTerm := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", searchTerm, searchTerm)
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

	err := db.Order("name ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&venues).Error

	return venues, totalCount, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Venue, error) {
	var venue Venue
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&venue).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Venue{}).Error
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *repository) CountSeats(ctx context.Context, venueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("seats").Where("venue_id = ?", venueID).Count(&count).Error
	return count, err
}

func (r *repository) CountEvents(ctx context.Context, venueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("events").Where("venue_id = ?", venueID).Count(&count).Error
	return count, err
}
