package cities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(city *City) error
	GetByID(id uuid.UUID) (*City, error)
	GetAll() ([]City, error)
	GetActive() ([]City, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*City, error)
	Delete(id uuid.UUID) error
	CountVenues(cityID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(city *City) error {
	return r.db.Create(city).Error
}

func (r *repository) GetByID(id uuid.UUID) (*City, error) {
	var city City
	if err := r.db.Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *repository) GetAll() ([]City, error) {
	var cities []City
	err := r.db.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *repository) GetActive() ([]City, error) {
	var cities []City
	err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*City, error) {
	var city City
	if err := r.db.Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&city).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&City{}).Error
}

func (r *repository) CountVenues(cityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("venues").Where("city_id = ?", cityID).Count(&count).Error
	return count, err
}
