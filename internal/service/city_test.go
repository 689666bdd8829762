package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/domain"
)

var testGeoConfig = config.Geo{
	DefaultCountry:   "Colombia",
	DefaultZoneColor: "#3498DB",
	MinLatitude:      -5,
	MaxLatitude:      13,
	MinLongitude:     -80,
	MaxLongitude:     -66,
}

func TestCityService_Create(t *testing.T) {
	t.Run("defaults country and returns stored row", func(t *testing.T) {
		var inserted domain.City
		cities := &citiesRepoMock{
			GetOneByNameFn: func(_ context.Context, _ string) (*domain.City, error) {
				return nil, domain.ErrNotFound
			},
			CreateFn: func(_ context.Context, city *domain.City) (int64, error) {
				inserted = *city
				return 7, nil
			},
			GetOneByIDFn: func(_ context.Context, id int64) (*domain.City, error) {
				return &domain.City{
					ID:        id,
					Name:      inserted.Name,
					Country:   inserted.Country,
					IsActive:  inserted.IsActive,
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}, nil
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		city, err := s.Create(context.Background(), CityCreateInput{Name: "Bogotá"})
		require.NoError(t, err)
		assert.Equal(t, int64(7), city.ID)
		assert.Equal(t, "Colombia", city.Country)
		assert.True(t, city.IsActive)
	})

	t.Run("existing name yields conflict", func(t *testing.T) {
		cities := &citiesRepoMock{
			GetOneByNameFn: func(_ context.Context, name string) (*domain.City, error) {
				return &domain.City{ID: 1, Name: name}, nil
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		_, err := s.Create(context.Background(), CityCreateInput{Name: "Bogotá"})
		var conflict *CityConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Bogotá", conflict.Name)
	})

	t.Run("duplicate entry from store yields conflict", func(t *testing.T) {
		// The pre-check missed a concurrent insert; the unique index caught it.
		cities := &citiesRepoMock{
			GetOneByNameFn: func(_ context.Context, _ string) (*domain.City, error) {
				return nil, domain.ErrNotFound
			},
			CreateFn: func(_ context.Context, _ *domain.City) (int64, error) {
				return 0, domain.ErrDuplicateEntry
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		_, err := s.Create(context.Background(), CityCreateInput{Name: "Cali"})
		var conflict *CityConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Cali", conflict.Name)
	})
}

func TestCityService_GetWithZones(t *testing.T) {
	t.Run("returns active zones only", func(t *testing.T) {
		cities := &citiesRepoMock{
			GetOneByIDFn: func(_ context.Context, id int64) (*domain.City, error) {
				return &domain.City{ID: id, Name: "Bogotá", Country: "Colombia", IsActive: true}, nil
			},
		}
		zones := &zonesRepoMock{
			ListActiveByCityFn: func(_ context.Context, cityID int64) ([]domain.Zone, error) {
				return []domain.Zone{
					{ID: 1, Name: "Norte", CityID: cityID, IsActive: true},
					{ID: 2, Name: "Centro", CityID: cityID, IsActive: true},
					{ID: 3, Name: "Sur", CityID: cityID, IsActive: true},
				}, nil
			},
		}

		s := newCityService(cities, zones, testGeoConfig)

		city, cityZones, err := s.GetWithZones(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Bogotá", city.Name)
		assert.Len(t, cityZones, 3)
	})

	t.Run("missing city yields not found", func(t *testing.T) {
		cities := &citiesRepoMock{
			GetOneByIDFn: func(_ context.Context, _ int64) (*domain.City, error) {
				return nil, domain.ErrNotFound
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		_, _, err := s.GetWithZones(context.Background(), 99)
		assert.ErrorIs(t, err, ErrCityNotFound)
	})
}

func TestCityService_Update(t *testing.T) {
	t.Run("missing city yields not found", func(t *testing.T) {
		cities := &citiesRepoMock{
			GetOneByIDFn: func(_ context.Context, _ int64) (*domain.City, error) {
				return nil, domain.ErrNotFound
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		_, err := s.Update(context.Background(), 42, domain.CityUpdate{})
		assert.ErrorIs(t, err, ErrCityNotFound)
	})

	t.Run("passes through only supplied fields", func(t *testing.T) {
		var applied domain.CityUpdate
		cities := &citiesRepoMock{
			GetOneByIDFn: func(_ context.Context, id int64) (*domain.City, error) {
				return &domain.City{ID: id, Name: "Bogotá", Country: "Colombia", IsActive: true}, nil
			},
			UpdateFn: func(_ context.Context, _ int64, update domain.CityUpdate) error {
				applied = update
				return nil
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		newName := "Medellín"
		_, err := s.Update(context.Background(), 1, domain.CityUpdate{Name: &newName})
		require.NoError(t, err)
		require.NotNil(t, applied.Name)
		assert.Equal(t, "Medellín", *applied.Name)
		assert.Nil(t, applied.Country)
		assert.Nil(t, applied.IsActive)
	})

	t.Run("renaming onto an existing name yields conflict", func(t *testing.T) {
		cities := &citiesRepoMock{
			GetOneByIDFn: func(_ context.Context, id int64) (*domain.City, error) {
				return &domain.City{ID: id, Name: "Cali"}, nil
			},
			UpdateFn: func(_ context.Context, _ int64, _ domain.CityUpdate) error {
				return domain.ErrDuplicateEntry
			},
		}

		s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

		newName := "Bogotá"
		_, err := s.Update(context.Background(), 2, domain.CityUpdate{Name: &newName})
		var conflict *CityConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Bogotá", conflict.Name)
	})
}

func TestCityService_Delete(t *testing.T) {
	cities := &citiesRepoMock{
		DeleteFn: func(_ context.Context, _ int64) error {
			return domain.ErrNotFound
		},
	}

	s := newCityService(cities, &zonesRepoMock{}, testGeoConfig)

	err := s.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCityNotFound)
}
