package handler

import (
	"context"
	"net/http"
	"strings"

	"injai_channel/internal/middleware"
	"injai_channel/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DashboardCounter supplies the numbers on the admin landing page
type DashboardCounter interface {
	Counts(ctx context.Context) (*model.DashboardCounts, error)
}

// PageHandler renders the login page and the admin dashboard. The engine must have the
// templates from package web loaded.
type PageHandler struct {
	dashboard DashboardCounter
	gate      *middleware.Gate
	log       zerolog.Logger
}

func NewPageHandler(dashboard DashboardCounter, gate *middleware.Gate, log zerolog.Logger) *PageHandler {
	return &PageHandler{dashboard: dashboard, gate: gate, log: log}
}

// Login renders the sign-in form, or sends an admin who is already signed in to the dashboard
func (h *PageHandler) Login(c *gin.Context) {
	if token, err := c.Cookie(middleware.TokenCookie); err == nil && h.gate.Verify(token).Allowed() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Next": "/admin"})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	counts, err := h.dashboard.Counts(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to load dashboard counts")
		counts = &model.DashboardCounts{}
	}
	section := strings.Trim(c.Param("section"), "/")
	if i := strings.Index(section, "/"); i >= 0 {
		section = section[:i]
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Section":  section,
		"Username": c.GetString(middleware.AuthUsernameKey),
		"Counts":   counts,
	})
}

// RegisterPageRoutes registers /login and the gated /admin pages
func (h *PageHandler) RegisterPageRoutes(r *gin.Engine, pageGateMW gin.HandlerFunc) {
	r.GET(middleware.LoginPath, h.Login)

	admin := r.Group("/admin")
	admin.Use(pageGateMW)
	{
		admin.GET("", h.Dashboard)
		admin.GET("/*section", h.Dashboard)
	}
}
