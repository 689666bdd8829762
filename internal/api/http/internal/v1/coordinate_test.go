package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/service"
)

func TestValidateCoordinates(t *testing.T) {
	geo := &geoServiceMock{
		ValidateCoordinatesFn: func(coordinate domain.Coordinate) (*domain.ValidatedCoordinate, error) {
			if coordinate.Latitude < -5 || coordinate.Latitude > 13 {
				return nil, &service.OutOfServiceAreaError{Field: "latitude", Min: -5, Max: 13}
			}
			if coordinate.Longitude < -80 || coordinate.Longitude > -66 {
				return nil, &service.OutOfServiceAreaError{Field: "longitude", Min: -80, Max: -66}
			}
			return &domain.ValidatedCoordinate{
				Latitude:  coordinate.Latitude,
				Longitude: coordinate.Longitude,
				IsValid:   true,
				Country:   "Colombia",
			}, nil
		},
	}
	router, _ := setupTestRouter(&service.Services{Geo: geo})

	t.Run("accepts a coordinate inside the operating area", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/geo/coordinates/validate",
			`{"latitude":4.6097,"longitude":-74.0817}`, "")
		require.Equal(t, http.StatusOK, resp.Code)

		var body coordinateResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.True(t, body.IsValid)
		assert.Equal(t, "Colombia", body.Country)
		assert.InDelta(t, 4.6097, body.Latitude, 1e-9)
	})

	t.Run("accepts the zero coordinate for a single axis", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/geo/coordinates/validate",
			`{"latitude":0,"longitude":-74}`, "")
		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("outside the operating area yields 422", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/geo/coordinates/validate",
			`{"latitude":40.7128,"longitude":-74.006}`, "")
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "latitude")
	})

	t.Run("latitude beyond the globe yields 422", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/geo/coordinates/validate",
			`{"latitude":100,"longitude":-74}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("longitude beyond the globe yields 422", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/geo/coordinates/validate",
			`{"latitude":4.6,"longitude":-200}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("missing latitude yields 422", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/api/v1/geo/coordinates/validate",
			`{"longitude":-74}`, "")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Run("reports healthy", func(t *testing.T) {
		geo := &geoServiceMock{
			HealthFn: func(_ context.Context) *service.HealthStatus {
				return &service.HealthStatus{
					Status:   "healthy",
					Service:  "geo-backend",
					Version:  "1.0.0",
					Database: "connected",
				}
			},
		}
		router, _ := setupTestRouter(&service.Services{Geo: geo})

		resp := performRequest(router, http.MethodGet, "/api/v1/geo/health", "", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var body healthResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "connected", body.Database)
	})

	t.Run("reports unhealthy with 200", func(t *testing.T) {
		geo := &geoServiceMock{
			HealthFn: func(_ context.Context) *service.HealthStatus {
				return &service.HealthStatus{
					Status:   "unhealthy",
					Service:  "geo-backend",
					Version:  "1.0.0",
					Database: "error: connection refused",
				}
			},
		}
		router, _ := setupTestRouter(&service.Services{Geo: geo})

		resp := performRequest(router, http.MethodGet, "/api/v1/geo/health", "", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var body healthResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "unhealthy", body.Status)
		assert.Contains(t, body.Database, "connection refused")
	})
}
