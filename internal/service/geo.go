package service

import (
	"context"
	"fmt"

	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/repository"
)

type geoService struct {
	systemRepository repository.System
	config           *config.Config
	operatingBox     domain.BoundingBox
}

func newGeoService(systemRepository repository.System, cfg *config.Config) *geoService {
	return &geoService{
		systemRepository: systemRepository,
		config:           cfg,
		operatingBox: domain.BoundingBox{
			MinLat: cfg.Geo.MinLatitude,
			MaxLat: cfg.Geo.MaxLatitude,
			MinLon: cfg.Geo.MinLongitude,
			MaxLon: cfg.Geo.MaxLongitude,
		},
	}
}

// ValidateCoordinates checks the pair against the operating region. The
// boundary has already rejected values outside raw WGS84 bounds, so anything
// failing here is well-formed but out of the service area.
func (s *geoService) ValidateCoordinates(coordinate domain.Coordinate) (*domain.ValidatedCoordinate, error) {
	if coordinate.Latitude < s.operatingBox.MinLat || coordinate.Latitude > s.operatingBox.MaxLat {
		return nil, &OutOfServiceAreaError{
			Field: "latitude",
			Min:   s.operatingBox.MinLat,
			Max:   s.operatingBox.MaxLat,
		}
	}
	if coordinate.Longitude < s.operatingBox.MinLon || coordinate.Longitude > s.operatingBox.MaxLon {
		return nil, &OutOfServiceAreaError{
			Field: "longitude",
			Min:   s.operatingBox.MinLon,
			Max:   s.operatingBox.MaxLon,
		}
	}

	return &domain.ValidatedCoordinate{
		Latitude:  coordinate.Latitude,
		Longitude: coordinate.Longitude,
		IsValid:   true,
		Country:   s.config.Geo.DefaultCountry,
	}, nil
}

// Health probes the store. A failing probe is reported, never fatal.
func (s *geoService) Health(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:   "healthy",
		Service:  s.config.App.Name,
		Version:  s.config.App.Version,
		Database: "connected",
	}

	if err := s.systemRepository.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Database = fmt.Sprintf("error: %s", err)
	}

	return status
}
