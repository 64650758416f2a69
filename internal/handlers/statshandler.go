package handlers

import (
	"net/http"

	"github.com/applytrack/applytrack/internal/services"
	"github.com/gin-gonic/gin"
)

// StatsHandler recomputes dashboard statistics from a fresh snapshot on
// every request. No caching, no invalidation.
type StatsHandler struct {
	AppService *services.ApplicationService
}

func NewStatsHandler(s *services.ApplicationService) *StatsHandler {
	return &StatsHandler{
		AppService: s,
	}
}

// GetStats is the GET /stats endpoint
func (h *StatsHandler) GetStats(c *gin.Context) {
	apps, err := h.AppService.List(c.Request.Context())
	if err != nil {
		writeServiceError(c, "Failed to fetch applications", err)
		return
	}
	c.JSON(http.StatusOK, services.ComputeStatistics(apps))
}
