package handler

import (
	"net/http"
	"strings"

	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArtistHandler handles artist requests
type ArtistHandler struct {
	service service.ArtistService
	log     zerolog.Logger
}

// NewArtistHandler creates a new ArtistHandler
func NewArtistHandler(s service.ArtistService, log zerolog.Logger) *ArtistHandler {
	return &ArtistHandler{service: s, log: log}
}

func (h *ArtistHandler) List(c *gin.Context) {
	filters := model.ArtistFilters{
		Category: optionalQuery(c, "category"),
		Featured: c.Query("featured") == "true",
		Limit:    queryLimit(c),
	}
	artists, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch artists")
		return
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtistHandler) Get(c *gin.Context) {
	artist, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.log, err, "Artist not found", "Failed to fetch artist")
		return
	}
	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) Create(c *gin.Context) {
	var req model.ArtistRequest
	if !bindJSON(c, &req) {
		return
	}
	artist, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Artist not found", "Failed to create artist")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Artist created successfully", "artist": artist})
}

func (h *ArtistHandler) Update(c *gin.Context) {
	var req model.ArtistRequest
	if !bindJSON(c, &req) {
		return
	}
	artist, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, h.log, err, "Artist not found", "Failed to update artist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist updated successfully", "artist": artist})
}

func (h *ArtistHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Query("id")); err != nil {
		writeServiceError(c, h.log, err, "Artist not found", "Failed to delete artist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Artist deleted successfully"})
}

func (h *ArtistHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory echoes the category back; the category list itself is fixed.
func (h *ArtistHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
		Label    string `json:"label"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Label) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category and label are required"})
		return
	}
	c.JSON(http.StatusOK, model.ArtistCategory{Value: req.Category, Label: req.Label})
}

// RegisterArtistRoutes registers artist routes; reads are public, writes go through gateMW
func (h *ArtistHandler) RegisterArtistRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	artists := rg.Group("/artists")
	{
		artists.GET("", h.List)
		artists.GET("/categories", h.Categories)
		artists.GET("/:id", h.Get)

		artists.POST("", gateMW, h.Create)
		artists.PUT("", gateMW, h.Update)
		artists.DELETE("", gateMW, h.Delete)
		artists.POST("/categories", gateMW, h.CreateCategory)
	}
}
