package api

import (
	"net/http"

	"github.com/elearn-admin-gateway/internal/models"
	"github.com/elearn-admin-gateway/internal/service"
	"github.com/elearn-admin-gateway/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler handles the user management endpoints
type UserHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(services *service.Services, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		services: services,
		log:      log.With().Str("handler", "user").Logger(),
	}
}

// List handles GET /api/users
// Returns the enriched user collection with its derived total.
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.services.User.List(c.Request.Context(), principalFrom(c))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list users")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	user, err := h.services.User.Get(c.Request.Context(), principalFrom(c), id)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to get user")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.ValidateUserInput(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	list, err := h.services.User.Create(c.Request.Context(), principalFrom(c), in)
	if err != nil {
		h.log.Error().Err(err).Str("email", in.Email).Msg("Failed to create user")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var in models.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if errs := validation.ValidateUserInput(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	list, err := h.services.User.Update(c.Request.Context(), principalFrom(c), id, in)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to update user")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Delete handles DELETE /api/users/:id
// Deletes the user's time-spent record and the user as one logical
// operation, then returns the re-fetched collection.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	list, err := h.services.User.Delete(c.Request.Context(), principalFrom(c), id)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", id).Msg("Failed to delete user")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
