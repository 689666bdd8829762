package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digital-twins/geo-backend/internal/domain"
	"github.com/digital-twins/geo-backend/internal/service"
)

func (h *Handler) initCoordinatesRoutes(api *gin.RouterGroup) {
	coordinates := api.Group("/coordinates")
	{
		coordinates.POST("/validate", h.validateCoordinates)
	}
}

// Pointer fields so that zero is a present, valid value. The binding tags are
// the WGS84 shape check; the service applies the narrower operating box.
type validateCoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type coordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	IsValid   bool    `json:"is_valid"`
	Country   string  `json:"country"`
}

// @Summary Validate Coordinates
// @Tags Coordinates
// @Description Validate that a coordinate pair lies within the service operating region
// @Accept json
// @Produce json
// @Param input body validateCoordinatesRequest true "Coordinates"
// @Success 200 {object} coordinateResponse
// @Failure 422 {object} ValidationErrorStruct
// @Router /coordinates/validate [post]
func (h *Handler) validateCoordinates(c *gin.Context) {
	var req validateCoordinatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, err)
		return
	}

	validated, err := h.services.Geo.ValidateCoordinates(domain.Coordinate{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	})
	if err != nil {
		var outOfArea *service.OutOfServiceAreaError
		if errors.As(err, &outOfArea) {
			errorResponse(c, http.StatusUnprocessableEntity, outOfArea.Error())
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to validate coordinates")
		return
	}

	c.JSON(http.StatusOK, coordinateResponse{
		Latitude:  validated.Latitude,
		Longitude: validated.Longitude,
		IsValid:   validated.IsValid,
		Country:   validated.Country,
	})
}
