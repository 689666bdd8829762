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

type zoneRepository struct {
	db *sqlx.DB
}

func newZoneRepository(db *sqlx.DB) *zoneRepository {
	return &zoneRepository{
		db: db,
	}
}

func (r *zoneRepository) Create(ctx context.Context, zone *domain.Zone) (int64, error) {
	const query = `
	INSERT INTO zones (name, city_id, color, description, is_active) VALUES (?, ?, ?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, query,
		zone.Name,
		zone.CityID,
		zone.Color,
		zone.Description,
		zone.IsActive,
	)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return 0, domain.ErrDuplicateEntry
		}
		return 0, fmt.Errorf("insert into zones failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *zoneRepository) GetOneByID(ctx context.Context, id int64) (*domain.ZoneWithCity, error) {
	const query = `
	SELECT z.id, z.name, z.city_id, z.color, z.description, z.is_active, z.created_at, z.updated_at,
	       c.name AS city_name, c.country AS city_country
	FROM zones z
	JOIN cities c ON z.city_id = c.id
	WHERE z.id = ?;
	`
	var zone domain.ZoneWithCity
	if err := r.db.GetContext(ctx, &zone, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from zones by id failed: %w", err)
	}
	return &zone, nil
}

func (r *zoneRepository) GetOneByNameAndCityID(ctx context.Context, name string, cityID int64) (*domain.Zone, error) {
	const query = `
	SELECT id, name, city_id, color, description, is_active, created_at, updated_at
	FROM zones WHERE name = ? AND city_id = ?;
	`
	var zone domain.Zone
	if err := r.db.GetContext(ctx, &zone, query, name, cityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from zones by name and city failed: %w", err)
	}
	return &zone, nil
}

func (r *zoneRepository) List(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error) {
	query := `
	SELECT z.id, z.name, z.city_id, z.color, z.description, z.is_active, z.created_at, z.updated_at,
	       c.name AS city_name, c.country AS city_country
	FROM zones z
	JOIN cities c ON z.city_id = c.id
	`
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)
	if filter.CityID != nil {
		conditions = append(conditions, "z.city_id = ?")
		args = append(args, *filter.CityID)
	}
	if filter.IsActive != nil {
		conditions = append(conditions, "z.is_active = ?")
		args = append(args, *filter.IsActive)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY z.id ASC LIMIT ? OFFSET ?;`
	args = append(args, filter.Limit, filter.Skip)

	zones := make([]domain.ZoneWithCity, 0)
	if err := r.db.SelectContext(ctx, &zones, query, args...); err != nil {
		return nil, fmt.Errorf("select from zones failed: %w", err)
	}
	return zones, nil
}

func (r *zoneRepository) ListActiveByCity(ctx context.Context, cityID int64) ([]domain.Zone, error) {
	const query = `
	SELECT id, name, city_id, color, description, is_active, created_at, updated_at
	FROM zones WHERE city_id = ? AND is_active = TRUE ORDER BY id ASC;
	`
	zones := make([]domain.Zone, 0)
	if err := r.db.SelectContext(ctx, &zones, query, cityID); err != nil {
		return nil, fmt.Errorf("select active zones by city failed: %w", err)
	}
	return zones, nil
}

func (r *zoneRepository) Update(ctx context.Context, id int64, update domain.ZoneUpdate) error {
	setParts := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if update.Name != nil {
		setParts = append(setParts, "name = ?")
		args = append(args, *update.Name)
	}
	if update.CityID != nil {
		setParts = append(setParts, "city_id = ?")
		args = append(args, *update.CityID)
	}
	if update.Color != nil {
		setParts = append(setParts, "color = ?")
		args = append(args, *update.Color)
	}
	if update.Description != nil {
		setParts = append(setParts, "description = ?")
		args = append(args, *update.Description)
	}
	if update.IsActive != nil {
		setParts = append(setParts, "is_active = ?")
		args = append(args, *update.IsActive)
	}

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE zones SET %s WHERE id = ?;", strings.Join(setParts, ", "))
	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if db.IsDuplicateEntry(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("update zones by id failed: %w", err)
	}
	return nil
}
