package v1

import (
	"github.com/digital-twins/geo-backend/internal/config"
	"github.com/digital-twins/geo-backend/internal/service"
	"github.com/digital-twins/geo-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Geo Backend API
// @version 1.0
// @description Geographic reference data service: cities, zones and coordinate validation

// @BasePath /api/v1/geo

// @securityDefinitions.apikey UserAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	h.initHealthRoutes(api)
	h.initCitiesRoutes(api)
	h.initZonesRoutes(api)
	h.initCoordinatesRoutes(api)
}
