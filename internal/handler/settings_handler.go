package handler

import (
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type SettingsHandler struct {
	service service.SettingsService
	log     zerolog.Logger
}

func NewSettingsHandler(s service.SettingsService, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{service: s, log: log}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var update model.SettingsUpdate
	if !bindJSON(c, &update) {
		return
	}
	settings, err := h.service.Update(c.Request.Context(), update)
	if err != nil {
		internalError(c, h.log, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "settings": settings})
}

func (h *SettingsHandler) RegisterSettingsRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	rg.GET("/settings", h.Get)
	rg.POST("/settings", gateMW, h.Save)
}
