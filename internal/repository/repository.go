package repository

import (
	"context"

	"github.com/digital-twins/geo-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Cities Cities
	Zones  Zones
	System System
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Cities: newCityRepository(db),
		Zones:  newZoneRepository(db),
		System: newSystemRepository(db),
	}
}

type Cities interface {
	Create(ctx context.Context, city *domain.City) (int64, error)
	GetOneByID(ctx context.Context, id int64) (*domain.City, error)
	GetOneByName(ctx context.Context, name string) (*domain.City, error)
	List(ctx context.Context, filter domain.CityFilter) ([]domain.City, error)
	Update(ctx context.Context, id int64, update domain.CityUpdate) error
	Delete(ctx context.Context, id int64) error
}

type Zones interface {
	Create(ctx context.Context, zone *domain.Zone) (int64, error)
	GetOneByID(ctx context.Context, id int64) (*domain.ZoneWithCity, error)
	GetOneByNameAndCityID(ctx context.Context, name string, cityID int64) (*domain.Zone, error)
	List(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error)
	ListActiveByCity(ctx context.Context, cityID int64) ([]domain.Zone, error)
	Update(ctx context.Context, id int64, update domain.ZoneUpdate) error
}

type System interface {
	Ping(ctx context.Context) error
}
