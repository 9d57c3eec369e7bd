package api

import (
	"fmt"
	"net/http"

	"github.com/elearn-admin-gateway/internal/config"
	"github.com/elearn-admin-gateway/internal/models"
	"github.com/elearn-admin-gateway/internal/service"
	"github.com/elearn-admin-gateway/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// BookHandler handles the e-book library endpoints
type BookHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *BookHandler {
	return &BookHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "book").Logger(),
	}
}

// List handles GET /api/books
func (h *BookHandler) List(c *gin.Context) {
	list, err := h.services.Library.List(c.Request.Context(), principalFrom(c))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list books")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Upload handles POST /api/books/upload
// Streams the multipart submission (metadata, epub, cover image) through
// to the library service without writing it to disk.
func (h *BookHandler) Upload(c *gin.Context) {
	epub, epubHeader, err := c.Request.FormFile("epub")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "epub file is required"})
		return
	}
	defer epub.Close()

	cover, coverHeader, err := c.Request.FormFile("coverImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coverImage file is required"})
		return
	}
	defer cover.Close()

	if size := epubHeader.Size + coverHeader.Size; size > h.cfg.Upload.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("upload too large, max size is %d MB", h.cfg.Upload.MaxUploadSize/(1024*1024)),
		})
		return
	}

	in := models.BookUpload{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		Description: c.PostForm("description"),
		Epub: models.UploadFile{
			Name:        epubHeader.Filename,
			ContentType: epubHeader.Header.Get("Content-Type"),
			Reader:      epub,
		},
		Cover: models.UploadFile{
			Name:        coverHeader.Filename,
			ContentType: coverHeader.Header.Get("Content-Type"),
			Reader:      cover,
		},
	}

	if errs := validation.ValidateBookUpload(&in); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	book, err := h.services.Library.Upload(c.Request.Context(), principalFrom(c), in)
	if err != nil {
		h.log.Error().Err(err).Str("title", in.Title).Msg("Failed to upload book")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

// Delete handles DELETE /api/books/:id
// Returns the re-fetched collection so the client's count comes from
// post-mutation state.
func (h *BookHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	list, err := h.services.Library.Delete(c.Request.Context(), principalFrom(c), id)
	if err != nil {
		h.log.Error().Err(err).Str("book_id", id).Msg("Failed to delete book")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
