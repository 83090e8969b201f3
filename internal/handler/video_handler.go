package handler

import (
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// VideoHandler handles video requests
type VideoHandler struct {
	service service.VideoService
	log     zerolog.Logger
}

func NewVideoHandler(s service.VideoService, log zerolog.Logger) *VideoHandler {
	return &VideoHandler{service: s, log: log}
}

func (h *VideoHandler) List(c *gin.Context) {
	filters := model.VideoFilters{
		Category: optionalQuery(c, "category"),
		Featured: c.Query("featured") == "true",
		ArtistID: optionalQuery(c, "artist"),
		Limit:    queryLimit(c),
	}
	videos, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch videos")
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *VideoHandler) Create(c *gin.Context) {
	var req model.VideoRequest
	if !bindJSON(c, &req) {
		return
	}
	video, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Video not found", "Failed to create video")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Video created successfully", "video": video})
}

func (h *VideoHandler) Update(c *gin.Context) {
	var req model.VideoRequest
	if !bindJSON(c, &req) {
		return
	}
	video, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Video not found", "Failed to update video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video updated successfully", "video": video})
}

func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		writeServiceError(c, h.log, err, "Video not found", "Failed to delete video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Video deleted successfully"})
}

func (h *VideoHandler) RegisterVideoRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	videos := rg.Group("/videos")
	{
		videos.GET("", h.List)
		videos.POST("", gateMW, h.Create)
		videos.PUT("", gateMW, h.Update)
		videos.DELETE("", gateMW, h.Delete)
	}
}
