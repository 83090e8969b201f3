package handler

import (
	"errors"
	"net/http"

	"injai_channel/internal/middleware"
	"injai_channel/internal/model"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// UserHandler serves account administration
type UserHandler struct {
	service service.UserService
	log     zerolog.Logger
}

func NewUserHandler(s service.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{service: s, log: log}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		internalError(c, h.log, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required"})
		return
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email or username already exists"})
			return
		}
		writeServiceError(c, h.log, err, "User not found", "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user.View()})
}

func (h *UserHandler) Update(c *gin.Context) {
	var req model.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrUsernameOrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
			return
		}
		writeServiceError(c, h.log, err, "User not found", "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user": user.View()})
}

func (h *UserHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrCannotDeleteSelf) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
			return
		}
		writeServiceError(c, h.log, err, "User not found", "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// RegisterUserRoutes registers user administration routes, all behind the gate
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	users := rg.Group("/users")
	users.Use(gateMW)
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
