package handler

import (
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ContactHandler struct {
	service service.ContactService
	log     zerolog.Logger
}

func NewContactHandler(s service.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{service: s, log: log}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.service.Submit(c.Request.Context(), req); err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		internalError(c, h.log, err, "Failed to send contact form")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact form submitted successfully"})
}

func (h *ContactHandler) RegisterContactRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}
