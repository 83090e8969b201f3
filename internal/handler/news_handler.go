package handler

import (
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewsHandler handles news article requests
type NewsHandler struct {
	service service.NewsService
	log     zerolog.Logger
}

func NewNewsHandler(s service.NewsService, log zerolog.Logger) *NewsHandler {
	return &NewsHandler{service: s, log: log}
}

func (h *NewsHandler) List(c *gin.Context) {
	filters := model.NewsFilters{
		Category: optionalQuery(c, "category"),
		Featured: c.Query("featured") == "true",
	}
	articles, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch news")
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *NewsHandler) Get(c *gin.Context) {
	article, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.log, err, "Article not found", "Failed to fetch article")
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create returns the stored article itself, not a message envelope
func (h *NewsHandler) Create(c *gin.Context) {
	var req model.NewsRequest
	if !bindJSON(c, &req) {
		return
	}
	article, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Article not found", "Failed to create article")
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *NewsHandler) Update(c *gin.Context) {
	var req model.NewsRequest
	if !bindJSON(c, &req) {
		return
	}
	article, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Article not found", "Failed to update article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article updated successfully", "article": article})
}

func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		writeServiceError(c, h.log, err, "Article not found", "Failed to delete article")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func (h *NewsHandler) RegisterNewsRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	news := rg.Group("/news")
	{
		news.GET("", h.List)
		news.GET("/:id", h.Get)
		news.POST("", gateMW, h.Create)
		news.PUT("", gateMW, h.Update)
		news.DELETE("", gateMW, h.Delete)
	}
}
