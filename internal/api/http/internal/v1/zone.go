package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/service"
	"github.com/digital-twins/geo-backend/pkg/logger"
)

func (h *Handler) initZonesRoutes(api *gin.RouterGroup) {
	zones := api.Group("/zones")
	{
		zones.GET("", h.getZones)
		zones.GET("/:id", h.getZoneByID)
		zones.POST("", h.userIdentityMiddleware, h.createZone)
		zones.PUT("/:id", h.userIdentityMiddleware, h.updateZone)
	}
}

type zoneResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CityID      int64   `json:"city_id"`
	Color       string  `json:"color"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at"`
}

type zoneWithCityResponse struct {
	zoneResponse
	CityName    string `json:"city_name"`
	CityCountry string `json:"city_country"`
}

func newZoneResponse(zone *domain.Zone) zoneResponse {
	response := zoneResponse{
		ID:        zone.ID,
		Name:      zone.Name,
		CityID:    zone.CityID,
		Color:     zone.Color,
		IsActive:  zone.IsActive,
		CreatedAt: zone.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if zone.Description.Valid {
		description := zone.Description.String
		response.Description = &description
	}
	return response
}

func newZoneWithCityResponse(zone *domain.ZoneWithCity) zoneWithCityResponse {
	return zoneWithCityResponse{
		zoneResponse: newZoneResponse(&zone.Zone),
		CityName:     zone.CityName,
		CityCountry:  zone.CityCountry,
	}
}

type createZoneRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	CityID      int64   `json:"city_id" binding:"required,min=1"`
	Color       string  `json:"color" binding:"omitempty,zonecolor"`
	Description *string `json:"description"`
}

type updateZoneRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=255"`
	CityID      *int64  `json:"city_id" binding:"omitempty,min=1"`
	Color       *string `json:"color" binding:"omitempty,zonecolor"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type listZonesQuery struct {
	CityID   *int64 `form:"city_id" binding:"omitempty,min=1"`
	Skip     *int   `form:"skip" binding:"omitempty,min=0"`
	Limit    *int   `form:"limit" binding:"omitempty,min=1"`
	IsActive *bool  `form:"is_active"`
}

// @Summary List Zones
// @Tags Zones
// @Description Get zones denormalized with their owning city, with pagination and filters
// @Produce json
// @Param city_id query int false "Filter by city"
// @Param skip query int false "Records to skip (default 0)"
// @Param limit query int false "Max records to return (1-1000, default 100)"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {array} zoneWithCityResponse
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /zones [get]
func (h *Handler) getZones(c *gin.Context) {
	var query listZonesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationErrorResponse(c, err)
		return
	}

	skip, limit, err := h.pageBounds(query.Skip, query.Limit)
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	zones, err := h.services.Zones.List(c.Request.Context(), domain.ZoneFilter{
		CityID:   query.CityID,
		IsActive: query.IsActive,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		logger.Error("list zones failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list zones")
		return
	}

	response := make([]zoneWithCityResponse, 0, len(zones))
	for i := range zones {
		response = append(response, newZoneWithCityResponse(&zones[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get Zone
// @Tags Zones
// @Description Get a zone with its owning city's name and country
// @Produce json
// @Param id path int true "Zone ID"
// @Success 200 {object} zoneWithCityResponse
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /zones/{id} [get]
func (h *Handler) getZoneByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	zone, err := h.services.Zones.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			errorResponse(c, http.StatusNotFound, fmt.Sprintf("zone with id %d not found", id))
			return
		}
		logger.Error("get zone failed", zap.Error(err), zap.Int64("zone_id", id))
		errorResponse(c, http.StatusInternalServerError, "failed to get zone")
		return
	}

	c.JSON(http.StatusOK, newZoneWithCityResponse(zone))
}

// @Summary Create Zone
// @Tags Zones
// @Description Create a new zone in a city (requires authentication)
// @Accept json
// @Produce json
// @Param input body createZoneRequest true "Zone data"
// @Security UserAuth
// @Success 201 {object} zoneResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var req createZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 2 {
		errorResponse(c, http.StatusUnprocessableEntity, "name must be at least 2 characters")
		return
	}

	zone, err := h.services.Zones.Create(c.Request.Context(), service.ZoneCreateInput{
		Name:        req.Name,
		CityID:      req.CityID,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			errorResponse(c, http.StatusNotFound, fmt.Sprintf("city with id %d not found", req.CityID))
			return
		}
		var conflict *service.ZoneConflictError
		if errors.As(err, &conflict) {
			errorResponse(c, http.StatusBadRequest, conflict.Error())
			return
		}
		logger.Error("create zone failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to create zone")
		return
	}

	c.JSON(http.StatusCreated, newZoneResponse(zone))
}

// @Summary Update Zone
// @Tags Zones
// @Description Partially update an existing zone (requires authentication)
// @Accept json
// @Produce json
// @Param id path int true "Zone ID"
// @Param input body updateZoneRequest true "Fields to update"
// @Security UserAuth
// @Success 200 {object} zoneResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var req updateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if len(trimmed) < 2 {
			errorResponse(c, http.StatusUnprocessableEntity, "name must be at least 2 characters")
			return
		}
		req.Name = &trimmed
	}

	zone, err := h.services.Zones.Update(c.Request.Context(), id, domain.ZoneUpdate{
		Name:        req.Name,
		CityID:      req.CityID,
		Color:       req.Color,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			errorResponse(c, http.StatusNotFound, fmt.Sprintf("zone with id %d not found", id))
			return
		}
		if errors.Is(err, service.ErrCityNotFound) {
			errorResponse(c, http.StatusNotFound, fmt.Sprintf("city with id %d not found", *req.CityID))
			return
		}
		var conflict *service.ZoneConflictError
		if errors.As(err, &conflict) {
			errorResponse(c, http.StatusBadRequest, conflict.Error())
			return
		}
		logger.Error("update zone failed", zap.Error(err), zap.Int64("zone_id", id))
		errorResponse(c, http.StatusInternalServerError, "failed to update zone")
		return
	}

	c.JSON(http.StatusOK, newZoneResponse(zone))
}
