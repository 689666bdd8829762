package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/repository"
)

type zoneService struct {
	zoneRepository repository.Zones
	cityRepository repository.Cities
	geoConfig      config.Geo
}

func newZoneService(zoneRepository repository.Zones, cityRepository repository.Cities, geoConfig config.Geo) *zoneService {
	return &zoneService{
		zoneRepository: zoneRepository,
		cityRepository: cityRepository,
		geoConfig:      geoConfig,
	}
}

func (s *zoneService) List(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error) {
	return s.zoneRepository.List(ctx, filter)
}

func (s *zoneService) GetByID(ctx context.Context, id int64) (*domain.ZoneWithCity, error) {
	zone, err := s.zoneRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}
	return zone, nil
}

func (s *zoneService) Create(ctx context.Context, input ZoneCreateInput) (*domain.Zone, error) {
	// The referenced city must exist before the insert is attempted.
	city, err := s.cityRepository.GetOneByID(ctx, input.CityID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}

	_, err = s.zoneRepository.GetOneByNameAndCityID(ctx, input.Name, input.CityID)
	if err == nil {
		return nil, &ZoneConflictError{Name: input.Name, CityName: city.Name}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = s.geoConfig.DefaultZoneColor
	}

	zone := &domain.Zone{
		Name:     input.Name,
		CityID:   input.CityID,
		Color:    strings.ToUpper(color),
		IsActive: true,
	}
	if input.Description != nil {
		zone.Description = sql.NullString{String: *input.Description, Valid: true}
	}

	id, err := s.zoneRepository.Create(ctx, zone)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, &ZoneConflictError{Name: input.Name, CityName: city.Name}
		}
		return nil, fmt.Errorf("create zone failed: %w", err)
	}

	created, err := s.zoneRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &created.Zone, nil
}

func (s *zoneService) Update(ctx context.Context, id int64, update domain.ZoneUpdate) (*domain.Zone, error) {
	existing, err := s.zoneRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrZoneNotFound
		}
		return nil, err
	}

	// Re-parenting must point at an existing city.
	if update.CityID != nil && *update.CityID != existing.CityID {
		if _, err := s.cityRepository.GetOneByID(ctx, *update.CityID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, ErrCityNotFound
			}
			return nil, err
		}
	}

	if update.Color != nil {
		normalized := strings.ToUpper(*update.Color)
		update.Color = &normalized
	}

	if err := s.zoneRepository.Update(ctx, id, update); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			name := existing.Name
			if update.Name != nil {
				name = *update.Name
			}
			return nil, &ZoneConflictError{Name: name, CityName: existing.CityName}
		}
		return nil, fmt.Errorf("update zone failed: %w", err)
	}

	updated, err := s.zoneRepository.GetOneByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &updated.Zone, nil
}
