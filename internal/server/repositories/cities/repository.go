// Package cities declares the repository contract for city records.
package cities

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

// Repository defines persistence operations for city records.
type Repository interface {
	// List returns every city ordered by name.
	List(ctx context.Context) ([]models.City, error)

	// Get returns a city by id, or common.ErrNotFound.
	Get(ctx context.Context, cityID uuid.UUID) (*models.City, error)

	// Create stores a new city and returns it with its assigned id.
	Create(ctx context.Context, city *models.City) (*models.City, error)

	// Update renames an existing city. Returns common.ErrNotFound when absent.
	Update(ctx context.Context, city *models.City) error

	// Delete removes a city by id. Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, cityID uuid.UUID) error
}
