package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/repository"
)

type cityService struct {
	cityRepository repository.Cities
	zoneRepository repository.Zones
	geoConfig      config.Geo
}

func newCityService(cityRepository repository.Cities, zoneRepository repository.Zones, geoConfig config.Geo) *cityService {
	return &cityService{
		cityRepository: cityRepository,
		zoneRepository: zoneRepository,
		geoConfig:      geoConfig,
	}
}

func (s *cityService) List(ctx context.Context, filter domain.CityFilter) ([]domain.City, error) {
	return s.cityRepository.List(ctx, filter)
}

// GetWithZones returns the city together with its active zones. Inactive
// zones are excluded from both the slice and the count.
func (s *cityService) GetWithZones(ctx context.Context, id int64) (*domain.City, []domain.Zone, error) {
	city, err := s.cityRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, ErrCityNotFound
		}
		return nil, nil, err
	}

	zones, err := s.zoneRepository.ListActiveByCity(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return city, zones, nil
}

func (s *cityService) Create(ctx context.Context, input CityCreateInput) (*domain.City, error) {
	if input.Country == "" {
		input.Country = s.geoConfig.DefaultCountry
	}

	// Fast-path duplicate check for a friendly error; the unique index on
	// cities.name is what actually guarantees uniqueness under races.
	_, err := s.cityRepository.GetOneByName(ctx, input.Name)
	if err == nil {
		return nil, &CityConflictError{Name: input.Name}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	id, err := s.cityRepository.Create(ctx, &domain.City{
		Name:     input.Name,
		Country:  input.Country,
		IsActive: true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, &CityConflictError{Name: input.Name}
		}
		return nil, fmt.Errorf("create city failed: %w", err)
	}

	return s.cityRepository.GetOneByID(ctx, id)
}

func (s *cityService) Update(ctx context.Context, id int64, update domain.CityUpdate) (*domain.City, error) {
	city, err := s.cityRepository.GetOneByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCityNotFound
		}
		return nil, err
	}

	if err := s.cityRepository.Update(ctx, id, update); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			name := city.Name
			if update.Name != nil {
				name = *update.Name
			}
			return nil, &CityConflictError{Name: name}
		}
		return nil, fmt.Errorf("update city failed: %w", err)
	}

	return s.cityRepository.GetOneByID(ctx, id)
}

func (s *cityService) Delete(ctx context.Context, id int64) error {
	if err := s.cityRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrCityNotFound
		}
		return fmt.Errorf("delete city failed: %w", err)
	}
	return nil
}
