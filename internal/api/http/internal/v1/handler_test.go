package v1

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/service"
	"github.com/digital-twins/geo-backend/pkg/auth"
	"github.com/digital-twins/geo-backend/pkg/validator"
)

var registerValidatorOnce sync.Once

type citiesServiceMock struct {
	ListFn         func(ctx context.Context, filter domain.CityFilter) ([]domain.City, error)
	GetWithZonesFn func(ctx context.Context, id int64) (*domain.City, []domain.Zone, error)
	CreateFn       func(ctx context.Context, input service.CityCreateInput) (*domain.City, error)
	UpdateFn       func(ctx context.Context, id int64, update domain.CityUpdate) (*domain.City, error)
	DeleteFn       func(ctx context.Context, id int64) error
}

func (m *citiesServiceMock) List(ctx context.Context, filter domain.CityFilter) ([]domain.City, error) {
	return m.ListFn(ctx, filter)
}

func (m *citiesServiceMock) GetWithZones(ctx context.Context, id int64) (*domain.City, []domain.Zone, error) {
	return m.GetWithZonesFn(ctx, id)
}

func (m *citiesServiceMock) Create(ctx context.Context, input service.CityCreateInput) (*domain.City, error) {
	return m.CreateFn(ctx, input)
}

func (m *citiesServiceMock) Update(ctx context.Context, id int64, update domain.CityUpdate) (*domain.City, error) {
	return m.UpdateFn(ctx, id, update)
}

func (m *citiesServiceMock) Delete(ctx context.Context, id int64) error {
	return m.DeleteFn(ctx, id)
}

type zonesServiceMock struct {
	ListFn    func(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.ZoneWithCity, error)
	CreateFn  func(ctx context.Context, input service.ZoneCreateInput) (*domain.Zone, error)
	UpdateFn  func(ctx context.Context, id int64, update domain.ZoneUpdate) (*domain.Zone, error)
}

func (m *zonesServiceMock) List(ctx context.Context, filter domain.ZoneFilter) ([]domain.ZoneWithCity, error) {
	return m.ListFn(ctx, filter)
}

func (m *zonesServiceMock) GetByID(ctx context.Context, id int64) (*domain.ZoneWithCity, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *zonesServiceMock) Create(ctx context.Context, input service.ZoneCreateInput) (*domain.Zone, error) {
	return m.CreateFn(ctx, input)
}

func (m *zonesServiceMock) Update(ctx context.Context, id int64, update domain.ZoneUpdate) (*domain.Zone, error) {
	return m.UpdateFn(ctx, id, update)
}

type geoServiceMock struct {
	ValidateCoordinatesFn func(coordinate domain.Coordinate) (*domain.ValidatedCoordinate, error)
	HealthFn              func(ctx context.Context) *service.HealthStatus
}

func (m *geoServiceMock) ValidateCoordinates(coordinate domain.Coordinate) (*domain.ValidatedCoordinate, error) {
	return m.ValidateCoordinatesFn(coordinate)
}

func (m *geoServiceMock) Health(ctx context.Context) *service.HealthStatus {
	return m.HealthFn(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.App{
			Name:      "geo-backend",
			Version:   "1.0.0",
			APIPrefix: "/api/v1/geo",
		},
		Auth: config.AuthConfig{
			JWT: config.JWTConfig{SigningKey: "test-signing-key", AccessTokenTTL: time.Minute},
		},
		Geo: config.Geo{
			DefaultCountry:   "Colombia",
			DefaultZoneColor: "#3498DB",
			MinLatitude:      -5,
			MaxLatitude:      13,
			MinLongitude:     -80,
			MaxLongitude:     -66,
		},
		Pagination: config.Pagination{DefaultLimit: 100, MaxLimit: 1000},
	}
}

// setupTestRouter wires a gin engine the way apiHttp.Handler.Init does, with
// mocked services behind the real route handlers.
func setupTestRouter(services *service.Services) (*gin.Engine, auth.TokenManager) {
	gin.SetMode(gin.TestMode)
	registerValidatorOnce.Do(validator.RegisterGinValidator)

	cfg := testConfig()
	tokenManager, _ := auth.NewManager(cfg.Auth.JWT)

	router := gin.New()
	handler := NewHandler(services, tokenManager, cfg)
	handler.Init(router.Group(cfg.App.APIPrefix))

	return router, tokenManager
}

func bearerToken(tokenManager auth.TokenManager) string {
	token, _ := tokenManager.NewJWT("user-1")
	return "Bearer " + token
}

func performRequest(router *gin.Engine, method, path, body, authHeader string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()

	var payload io.Reader
	if body != "" {
		payload = strings.NewReader(body)
	}
	httpReq := httptest.NewRequest(method, path, payload)
	if body != "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		httpReq.Header.Set("Authorization", authHeader)
	}

	router.ServeHTTP(recorder, httpReq)
	return recorder
}
