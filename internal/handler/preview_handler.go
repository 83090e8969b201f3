package handler

import (
	"errors"
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type PreviewHandler struct {
	service service.PreviewService
	log     zerolog.Logger
}

func NewPreviewHandler(s service.PreviewService, log zerolog.Logger) *PreviewHandler {
	return &PreviewHandler{service: s, log: log}
}

func (h *PreviewHandler) Preview(c *gin.Context) {
	var req model.PreviewRequest
	if !bindJSON(c, &req) {
		return
	}
	preview, err := h.service.Preview(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNoPreview) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Could not generate preview"})
			return
		}
		writeServiceError(c, h.log, err, "Could not generate preview", "Failed to generate preview")
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *PreviewHandler) RegisterPreviewRoutes(rg *gin.RouterGroup) {
	rg.POST("/preview", h.Preview)
}
