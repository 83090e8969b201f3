package handler

import (
	"errors"
	"net/http"

	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UploadHandler accepts admin image uploads
type UploadHandler struct {
	service service.UploadService
	log     zerolog.Logger
}

func NewUploadHandler(s service.UploadService, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{service: s, log: log}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFileFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPEG, PNG, GIF and WebP images are allowed"})
		case errors.Is(err, service.ErrFileSizeExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be 5MB or smaller"})
		default:
			writeServiceError(c, h.log, err, "Upload not found", "Failed to upload image")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *UploadHandler) RegisterUploadRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	rg.POST("/upload", gateMW, h.UploadImage)
}
