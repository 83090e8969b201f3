package handler

import (
	"errors"
	"fmt"
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewsletterHandler serves public subscription endpoints and the admin subscriber list
type NewsletterHandler struct {
	service service.NewsletterService
	log     zerolog.Logger
}

func NewNewsletterHandler(s service.NewsletterService, log zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{service: s, log: log}
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.service.Subscribe(c.Request.Context(), req); err != nil {
		if errors.Is(err, service.ErrAlreadySubscribed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already subscribed"})
			return
		}
		writeServiceError(c, h.log, err, "Subscription not found", "Failed to subscribe to newsletter")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed to newsletter"})
}

func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	if err := h.service.Unsubscribe(c.Request.Context(), c.Query("email")); err != nil {
		writeServiceError(c, h.log, err, "Email not found in subscription list", "Failed to unsubscribe from newsletter")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully unsubscribed from newsletter"})
}

// Broadcast sends an article to all active subscribers within the request
func (h *NewsletterHandler) Broadcast(c *gin.Context) {
	var req model.BroadcastRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.Broadcast(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Article not found", "Failed to send newsletter")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Newsletter sent to %d subscribers", result.Success),
		"failed":  result.Failed,
	})
}

func (h *NewsletterHandler) ListSubscribers(c *gin.Context) {
	subs, stats, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch subscribers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": subs, "stats": stats})
}

func (h *NewsletterHandler) UpdateSubscriber(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeServiceError(c, h.log, err, "Subscriber not found", "Failed to update subscriber")
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *NewsletterHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, h.log, err, "Subscriber not found", "Failed to delete subscriber")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted successfully"})
}

// RegisterNewsletterRoutes registers the public newsletter routes and the gated admin ones
func (h *NewsletterHandler) RegisterNewsletterRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	rg.POST("/newsletter", h.Subscribe)
	rg.DELETE("/newsletter", h.Unsubscribe)
	rg.PUT("/newsletter", gateMW, h.Broadcast)

	admin := rg.Group("/admin/newsletter")
	admin.Use(gateMW)
	{
		admin.GET("", h.ListSubscribers)
		admin.PATCH("/:id", h.UpdateSubscriber)
		admin.DELETE("/:id", h.DeleteSubscriber)
	}
}
