package cities

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/citykeeper/internal/common"
	"github.com/dmitrijs2005/citykeeper/internal/dbx"
	"github.com/dmitrijs2005/citykeeper/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.City, error) {
	query := `SELECT id, name FROM cities ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var city models.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cities, nil
}

func (r *PostgresRepository) Get(ctx context.Context, cityID uuid.UUID) (*models.City, error) {
	query := `SELECT id, name FROM cities WHERE id = $1`

	city := &models.City{}
	if err := r.db.QueryRowContext(ctx, query, cityID).Scan(&city.ID, &city.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return city, nil
}

func (r *PostgresRepository) Create(ctx context.Context, city *models.City) (*models.City, error) {
	query := `INSERT INTO cities (name) VALUES ($1) RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, city.Name).Scan(&city.ID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return city, nil
}

func (r *PostgresRepository) Update(ctx context.Context, city *models.City) error {
	query := `UPDATE cities SET name = $1 WHERE id = $2`

	res, err := r.db.ExecContext(ctx, query, city.Name, city.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowsAffected(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, cityID uuid.UUID) error {
	query := `DELETE FROM cities WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, cityID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRowsAffected(res)
}

func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
