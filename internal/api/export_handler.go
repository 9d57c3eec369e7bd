package api

import (
	"net/http"

	"github.com/elearn-admin-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExportHandler handles collection downloads
type ExportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		log:      log.With().Str("handler", "export").Logger(),
	}
}

// Stream handles GET /api/export?resource=...&format=...
// Streams the snapshot directly to the response.
func (h *ExportHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	resource := c.Query("resource")
	if resource != "users" && resource != "books" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resource must be one of: users, books"})
		return
	}

	format := c.Query("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "ndjson" && format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: csv, ndjson, json"})
		return
	}

	h.log.Info().
		Str("resource", resource).
		Str("format", format).
		Msg("Starting streaming export")

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv")
	case "ndjson":
		c.Header("Content-Type", "application/x-ndjson")
	case "json":
		c.Header("Content-Type", "application/json")
	}
	c.Header("Content-Disposition", "attachment; filename="+resource+"."+format)

	var err error
	switch resource {
	case "users":
		err = h.services.Export.StreamUsers(ctx, principalFrom(c), c.Writer, format)
	case "books":
		err = h.services.Export.StreamBooks(ctx, principalFrom(c), c.Writer, format)
	}

	if err != nil {
		h.log.Error().Err(err).Str("resource", resource).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}
