package handler

import (
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type EventHandler struct {
	service service.EventService
	log     zerolog.Logger
}

func NewEventHandler(s service.EventService, log zerolog.Logger) *EventHandler {
	return &EventHandler{service: s, log: log}
}

func (h *EventHandler) List(c *gin.Context) {
	filters := model.EventFilters{
		Status:   optionalQuery(c, "status"),
		Type:     optionalQuery(c, "type"),
		Featured: c.Query("featured") == "true",
		Limit:    queryLimit(c),
	}
	events, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Event not found", "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created successfully", "event": event})
}

func (h *EventHandler) Update(c *gin.Context) {
	var req model.EventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Event not found", "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event updated successfully", "event": event})
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		writeServiceError(c, h.log, err, "Event not found", "Failed to delete event")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func (h *EventHandler) RegisterEventRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.POST("", gateMW, h.Create)
		events.PUT("", gateMW, h.Update)
		events.DELETE("", gateMW, h.Delete)
	}
}
