package api

import (
	"net/http"

	"github.com/elearn-admin-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DashboardHandler handles the aggregate stats endpoints
type DashboardHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(services *service.Services, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		services: services,
		log:      log.With().Str("handler", "dashboard").Logger(),
	}
}

// Stats handles GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.services.Stats.Dashboard(c.Request.Context(), principalFrom(c))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build dashboard stats")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CourseDistribution handles GET /api/dashboard/course-distribution
func (h *DashboardHandler) CourseDistribution(c *gin.Context) {
	dist, err := h.services.Stats.CourseDistribution(c.Request.Context(), principalFrom(c))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build course distribution")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}
