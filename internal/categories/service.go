package categories

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"ticketops/internal/shared/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateCategory(adminID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error)
	GetCategoryByID(id uuid.UUID) (*CategoryResponse, error)
	GetCategoryBySlug(slug string) (*CategoryResponse, error)
	GetActiveCategories() ([]CategoryResponse, error)
	GetAllCategories() ([]CategoryResponse, error)
	UpdateCategory(id uuid.UUID, adminID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error)
	DeleteCategory(id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

var (
	slugStripRe    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRe = regexp.MustCompile(`[\s-]+`)
)

// generateSlug converts a category name to a URL-friendly slug
func generateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = slugStripRe.ReplaceAllString(slug, "")
	slug = slugCollapseRe.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *service) CreateCategory(adminID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.ErrInvalidInput.WithDetail("category name cannot be empty")
	}

	slug := generateSlug(name)
	if slug == "" {
		return nil, apperr.ErrInvalidInput.WithDetail("category name must contain at least one alphanumeric character")
	}

	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrInvalidInput.WithDetail("a category with a similar name already exists")
	}

	category := &Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		IsActive:    true,
		CreatedBy:   adminID,
	}

	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) GetCategoryByID(id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidInput.WithDetail("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) GetCategoryBySlug(slug string) (*CategoryResponse, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidInput.WithDetail("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) GetActiveCategories() ([]CategoryResponse, error) {
	categories, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return toResponses(categories), nil
}

func (s *service) GetAllCategories() ([]CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return toResponses(categories), nil
}

func (s *service) UpdateCategory(id uuid.UUID, adminID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrInvalidInput.WithDetail("category not found")
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	updates := map[string]interface{}{
		"updated_by": adminID,
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.ErrInvalidInput.WithDetail("category name cannot be empty")
		}
		slug := generateSlug(name)

		// Only collide-check when the slug actually changes.
		if slug != current.Slug {
			existing, err := s.repo.GetBySlug(slug)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing category: %w", err)
			}
			if existing != nil {
				return nil, apperr.ErrInvalidInput.WithDetail("a category with a similar name already exists")
			}
		}
		updates["name"] = name
		updates["slug"] = slug
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Icon != nil {
		updates["icon"] = strings.TrimSpace(*req.Icon)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	category, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	resp := category.ToResponse()
	return &resp, nil
}

func (s *service) DeleteCategory(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrInvalidInput.WithDetail("category not found")
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	count, err := s.repo.CountEvents(id)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if count > 0 {
		return apperr.ErrInvalidInput.WithDetail("category has events and cannot be deleted")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func toResponses(categories []Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, cat.ToResponse())
	}
	return responses
}
