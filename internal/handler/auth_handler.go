package handler

import (
	"errors"
	"net/http"

	"injai_channel/internal/middleware"
	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CookieOptions controls the session cookie set on login and signup
type CookieOptions struct {
	MaxAge int
	Secure bool
}

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
	cookie  CookieOptions
	log     zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, cookie CookieOptions, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{service: s, cookie: cookie, log: log}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		internalError(c, h.log, err, "Internal server error")
		return
	}

	h.setSessionCookie(c, token, h.cookie.MaxAge)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user.View(),
		"token":   token,
	})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &req) {
		return
	}

	user, token, err := h.service.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if msg, ok := validationMessage(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email or username already exists"})
		case errors.Is(err, service.ErrSignupDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": "Signup is disabled"})
		default:
			internalError(c, h.log, err, "Internal server error")
		}
		return
	}

	h.setSessionCookie(c, token, h.cookie.MaxAge)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    user.View(),
		"token":   token,
	})
}

// Logout clears the cookie. Tokens are stateless, so a copied token stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the identity carried by the caller's session
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":       middleware.CurrentUserID(c),
		"username": c.GetString(middleware.AuthUsernameKey),
		"role":     c.GetString(middleware.AuthRoleKey),
	}})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, gateMW gin.HandlerFunc) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", gateMW, h.Me)
	}
}
