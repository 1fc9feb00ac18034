package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/citykeeper/internal/common"
	"github.com/dmitrijs2005/citykeeper/internal/server/dto"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
	"github.com/dmitrijs2005/citykeeper/internal/server/repositories/repomanager"
)

// CityService provides CRUD operations over city records.
type CityService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewCityService constructs a CityService.
func NewCityService(db *sql.DB, m repomanager.RepositoryManager) *CityService {
	return &CityService{db: db, repos: m}
}

// List returns all cities ordered by name.
func (s *CityService) List(ctx context.Context) ([]models.City, error) {
	return s.repos.Cities(s.db).List(ctx)
}

// Get returns the city with the given id, or common.ErrNotFound.
func (s *CityService) Get(ctx context.Context, cityID uuid.UUID) (*models.City, error) {
	return s.repos.Cities(s.db).Get(ctx, cityID)
}

// Create validates and stores a new city.
func (s *CityService) Create(ctx context.Context, req dto.CityRequest) (*models.City, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, common.NewValidationError(violations...)
	}
	return s.repos.Cities(s.db).Create(ctx, &models.City{Name: req.CityName})
}

// Update renames an existing city. The path id and body id must match.
func (s *CityService) Update(ctx context.Context, cityID uuid.UUID, req dto.CityRequest) error {
	if cityID != req.CityID {
		return common.NewValidationError("given cityId and the object's id don't match")
	}
	if violations := req.Validate(); len(violations) > 0 {
		return common.NewValidationError(violations...)
	}

	err := s.repos.Cities(s.db).Update(ctx, &models.City{ID: cityID, Name: req.CityName})
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("error updating city: %w", err)
	}
	return err
}

// Delete removes a city by id.
func (s *CityService) Delete(ctx context.Context, cityID uuid.UUID) error {
	err := s.repos.Cities(s.db).Delete(ctx, cityID)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("error deleting city: %w", err)
	}
	return err
}
