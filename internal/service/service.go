package service

import (
	"context"

	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/repository"
)

type Services struct {
	Cities Cities
	Zones  Zones
	Geo    Geo
}

type Deps struct {
	Config *config.Config
	Repos  *repository.Repositories
}

func NewServices(deps Deps) *Services {
	return &Services{
		Cities: newCityService(deps.Repos.Cities, deps.Repos.Zones, deps.Config.Geo),
		Zones:  newZoneService(deps.Repos.Zones, deps.Repos.Cities, deps.Config.Geo),
		Geo:    newGeoService(deps.Repos.System, deps.Config),
	}
}

type CityCreateInput struct {
	Name    string
	Country string
}

type ZoneCreateInput struct {
	Name        string
	CityID      int64
	Color       string
	Description *string
}

type Cities interface {
	List(ctx context.Context, filter domain.CityFilter) ([]domain.City, error)
	GetWithZones(ctx context.Context, id int64) (*domain.City, []domain.Zone, error)
	Create(ctx context.Context, input CityCreateInput) (*domain.City, error)
	Update(ctx context.Context, id int64, update domain.CityUpdate) (*domain.City, error)
	Delete(ctx context.Context, id int64) error
}

type Zones interface {
	List(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error)
	GetByID(ctx context.Context, id int64) (*domain.ZoneWithCity, error)
	Create(ctx context.Context, input ZoneCreateInput) (*domain.Zone, error)
	Update(ctx context.Context, id int64, update domain.ZoneUpdate) (*domain.Zone, error)
}

type HealthStatus struct {
	Status   string
	Service  string
	Version  string
	Database string
}

type Geo interface {
	ValidateCoordinates(coordinate domain.Coordinate) (*domain.ValidatedCoordinate, error)
	Health(ctx context.Context) *HealthStatus
}
