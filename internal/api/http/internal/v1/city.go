package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/service"
	"github.com/digital-twins/geo-backend/pkg/logger"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	cities := api.Group("/cities")
	{
		cities.GET("", h.getCities)
		cities.GET("/:id", h.getCityWithZones)
		cities.POST("", h.userIdentityMiddleware, h.createCity)
		cities.PUT("/:id", h.userIdentityMiddleware, h.updateCity)
	}
}

type cityResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

type cityWithZonesResponse struct {
	cityResponse
	Zones      []zoneResponse `json:"zones"`
	TotalZones int            `json:"total_zones"`
}

func newCityResponse(city *domain.City) cityResponse {
	return cityResponse{
		ID:        city.ID,
		Name:      city.Name,
		Country:   city.Country,
		IsActive:  city.IsActive,
		CreatedAt: city.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type createCityRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=255"`
	Country string `json:"country" binding:"omitempty,max=100"`
}

type updateCityRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Country  *string `json:"country" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active"`
}

type listCitiesQuery struct {
	Skip     *int  `form:"skip" binding:"omitempty,min=0"`
	Limit    *int  `form:"limit" binding:"omitempty,min=1"`
	IsActive *bool `form:"is_active"`
}

// pageBounds applies pagination defaults and the configured upper limit.
func (h *Handler) pageBounds(skip, limit *int) (int, int, error) {
	resolvedSkip := 0
	if skip != nil {
		resolvedSkip = *skip
	}

	resolvedLimit := h.config.Pagination.DefaultLimit
	if limit != nil {
		resolvedLimit = *limit
	}
	if resolvedLimit > h.config.Pagination.MaxLimit {
		return 0, 0, fmt.Errorf("limit must be at most %d", h.config.Pagination.MaxLimit)
	}

	return resolvedSkip, resolvedLimit, nil
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

// @Summary List Cities
// @Tags Cities
// @Description Get available cities with pagination and status filter
// @Produce json
// @Param skip query int false "Records to skip (default 0)"
// @Param limit query int false "Max records to return (1-1000, default 100)"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {array} cityResponse
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities [get]
func (h *Handler) getCities(c *gin.Context) {
	var query listCitiesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		validationErrorResponse(c, err)
		return
	}

	skip, limit, err := h.pageBounds(query.Skip, query.Limit)
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	cities, err := h.services.Cities.List(c.Request.Context(), domain.CityFilter{
		IsActive: query.IsActive,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		logger.Error("list cities failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to list cities")
		return
	}

	response := make([]cityResponse, 0, len(cities))
	for i := range cities {
		response = append(response, newCityResponse(&cities[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get City With Zones
// @Tags Cities
// @Description Get a city together with its active zones and their count
// @Produce json
// @Param id path int true "City ID"
// @Success 200 {object} cityWithZonesResponse
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{id} [get]
func (h *Handler) getCityWithZones(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	city, zones, err := h.services.Cities.GetWithZones(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			errorResponse(c, http.StatusNotFound, fmt.Sprintf("city with id %d not found", id))
			return
		}
		logger.Error("get city with zones failed", zap.Error(err), zap.Int64("city_id", id))
		errorResponse(c, http.StatusInternalServerError, "failed to get city")
		return
	}

	response := cityWithZonesResponse{
		cityResponse: newCityResponse(city),
		Zones:        make([]zoneResponse, 0, len(zones)),
		TotalZones:   len(zones),
	}
	for i := range zones {
		response.Zones = append(response.Zones, newZoneResponse(&zones[i]))
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Create City
// @Tags Cities
// @Description Create a new city (requires authentication)
// @Accept json
// @Produce json
// @Param input body createCityRequest true "City data"
// @Security UserAuth
// @Success 201 {object} cityResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities [post]
func (h *Handler) createCity(c *gin.Context) {
	var req createCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if len(req.Name) < 2 {
		errorResponse(c, http.StatusUnprocessableEntity, "name must be at least 2 characters")
		return
	}

	city, err := h.services.Cities.Create(c.Request.Context(), service.CityCreateInput{
		Name:    req.Name,
		Country: req.Country,
	})
	if err != nil {
		var conflict *service.CityConflictError
		if errors.As(err, &conflict) {
			errorResponse(c, http.StatusBadRequest, conflict.Error())
			return
		}
		logger.Error("create city failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, "failed to create city")
		return
	}

	c.JSON(http.StatusCreated, newCityResponse(city))
}

// @Summary Update City
// @Tags Cities
// @Description Partially update an existing city (requires authentication)
// @Accept json
// @Produce json
// @Param id path int true "City ID"
// @Param input body updateCityRequest true "Fields to update"
// @Security UserAuth
// @Success 200 {object} cityResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ValidationErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /cities/{id} [put]
func (h *Handler) updateCity(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		errorResponse(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var req updateCityRequest
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

	city, err := h.services.Cities.Update(c.Request.Context(), id, domain.CityUpdate{
		Name:     req.Name,
		Country:  req.Country,
		IsActive: req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrCityNotFound) {
			errorResponse(c, http.StatusNotFound, fmt.Sprintf("city with id %d not found", id))
			return
		}
		var conflict *service.CityConflictError
		if errors.As(err, &conflict) {
			errorResponse(c, http.StatusBadRequest, conflict.Error())
			return
		}
		logger.Error("update city failed", zap.Error(err), zap.Int64("city_id", id))
		errorResponse(c, http.StatusInternalServerError, "failed to update city")
		return
	}

	c.JSON(http.StatusOK, newCityResponse(city))
}
