package service

import (
	"context"

	"github.com/digital-twins/geo-backend/internal/domain"
)

type citiesRepoMock struct {
	CreateFn       func(ctx context.Context, city *domain.City) (int64, error)
	GetOneByIDFn   func(ctx context.Context, id int64) (*domain.City, error)
	GetOneByNameFn func(ctx context.Context, name string) (*domain.City, error)
	ListFn         func(ctx context.Context, filter domain.CityFilter) ([]domain.City, error)
	UpdateFn       func(ctx context.Context, id int64, update domain.CityUpdate) error
	DeleteFn       func(ctx context.Context, id int64) error
}

func (m *citiesRepoMock) Create(ctx context.Context, city *domain.City) (int64, error) {
	return m.CreateFn(ctx, city)
}

func (m *citiesRepoMock) GetOneByID(ctx context.Context, id int64) (*domain.City, error) {
	return m.GetOneByIDFn(ctx, id)
}

func (m *citiesRepoMock) GetOneByName(ctx context.Context, name string) (*domain.City, error) {
	return m.GetOneByNameFn(ctx, name)
}

func (m *citiesRepoMock) List(ctx context.Context, filter domain.CityFilter) ([]domain.City, error) {
	return m.ListFn(ctx, filter)
}

func (m *citiesRepoMock) Update(ctx context.Context, id int64, update domain.CityUpdate) error {
	return m.UpdateFn(ctx, id, update)
}

func (m *citiesRepoMock) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

type zonesRepoMock struct {
	CreateFn                func(ctx context.Context, zone *domain.Zone) (int64, error)
	GetOneByIDFn            func(ctx context.Context, id int64) (*domain.ZoneWithCity, error)
	GetOneByNameAndCityIDFn func(ctx context.Context, name string, cityID int64) (*domain.Zone, error)
	ListFn                  func(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error)
	ListActiveByCityFn      func(ctx context.Context, cityID int64) ([]domain.Zone, error)
	UpdateFn                func(ctx context.Context, id int64, update domain.ZoneUpdate) error
}

func (m *zonesRepoMock) Create(ctx context.Context, zone *domain.Zone) (int64, error) {
	return m.CreateFn(ctx, zone)
}

func (m *zonesRepoMock) GetOneByID(ctx context.Context, id int64) (*domain.ZoneWithCity, error) {
	return m.GetOneByIDFn(ctx, id)
}

func (m *zonesRepoMock) GetOneByNameAndCityID(ctx context.Context, name string, cityID int64) (*domain.Zone, error) {
	return m.GetOneByNameAndCityIDFn(ctx, name, cityID)
}

func (m *zonesRepoMock) List(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error) {
	return m.ListFn(ctx, filter)
}

func (m *zonesRepoMock) ListActiveByCity(ctx context.Context, cityID int64) ([]domain.Zone, error) {
	return m.ListActiveByCityFn(ctx, cityID)
}

func (m *zonesRepoMock) Update(ctx context.Context, id int64, update domain.ZoneUpdate) error {
	return m.UpdateFn(ctx, id, update)
}

type systemRepoMock struct {
	PingFn func(ctx context.Context) error
}

func (m *systemRepoMock) Ping(ctx context.Context) error {
	return m.PingFn(ctx)
}
