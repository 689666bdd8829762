package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/digital-twins/geo-backend/internal/db"
	"github.com/digital-twins/geo-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type cityRepository struct {
	db *sqlx.DB
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db: db,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) (int64, error) {
	const query = `
	INSERT INTO cities (name, country, is_active) VALUES (?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, city.Name, city.Country, city.IsActive)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return 0, domain.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("insert into cities failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *cityRepository) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	const query = `
	SELECT id, name, country, is_active, created_at, updated_at FROM cities WHERE id = ?;
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from cities by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) GetOneByName(ctx context.Context, name string) (*domain.City, error) {
	const query = `
	SELECT id, name, country, is_active, created_at, updated_at FROM cities WHERE name = ?;
	`
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from cities by name failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) List(ctx context.Context, filter domain.CityFilter) ([]domain.City, error) {
	query := `
	SELECT id, name, country, is_active, created_at, updated_at FROM cities
	`
	args := make([]interface{}, 0, 3)
	if filter.IsActive != nil {
		query += ` WHERE is_active = ?`
		args = append(args, *filter.IsActive)
	}
	query += ` ORDER BY id ASC LIMIT ? OFFSET ?;`
	args = append(args, filter.Limit, filter.Skip)

	cities := make([]domain.City, 0)
	if err := r.db.SelectContext(ctx, &cities, query, args...); err != nil {
		return nil, fmt.Errorf("select from cities failed: %w", err)
	}
	return cities, nil
}

func (r *cityRepository) Update(ctx context.Context, id int64, update domain.CityUpdate) error {
	setParts := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	if update.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Country != nil {
		setParts = append(setParts, "country = ?")
		args = append(args, *update.Country)
	}
	if update.IsActive != nil {
		setParts = append(setParts, "is_active = ?")
		args = append(args, *update.IsActive)
	}

	// An empty partial update still refreshes updated_at.
	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE cities SET %s WHERE id = ?;", strings.Join(setParts, ", "))
	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update cities by id failed: %w", err)
	}
	return nil
}

// Delete removes a city. The FK on zones.city_id is ON DELETE CASCADE, so the
// city's zones go with it.
func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	const query = `
	DELETE FROM cities WHERE id = ?;
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete from cities by id failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
