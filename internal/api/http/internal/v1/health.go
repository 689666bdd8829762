package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initHealthRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.healthCheck)
}

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// @Summary Health Check
// @Tags Health
// @Description Report service status and store connectivity
// @Produce json
// @Success 200 {object} healthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	status := h.services.Geo.Health(c.Request.Context())

	c.JSON(http.StatusOK, healthResponse{
		Status:   status.Status,
		Service:  status.Service,
		Version:  status.Version,
		Database: status.Database,
	})
}
