package service

import (
	"errors"
	"fmt"
)

var (
	ErrCityNotFound = errors.New("city not found")
	ErrZoneNotFound = errors.New("zone not found")
)

// CityConflictError reports a city name collision.
type CityConflictError struct {
	Name string
}

func (e *CityConflictError) Error() string {
	return fmt.Sprintf("city '%s' already exists", e.Name)
}

// ZoneConflictError reports a (zone name, city) collision. The owning city's
// name is carried so the boundary can report it.
type ZoneConflictError struct {
	Name     string
	CityName string
}

func (e *ZoneConflictError) Error() string {
	return fmt.Sprintf("zone '%s' already exists in %s", e.Name, e.CityName)
}

// OutOfServiceAreaError reports a coordinate inside WGS84 bounds but outside
// the configured operating region.
type OutOfServiceAreaError struct {
	Field string
	Min   float64
	Max   float64
}

func (e *OutOfServiceAreaError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g (service operating range)", e.Field, e.Min, e.Max)
}
