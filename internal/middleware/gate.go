package middleware

import (
	"net/http"

	"injai_channel/internal/model"
	"injai_channel/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie carries the session token issued at login and signup
	TokenCookie = "token"

	AuthUserKey     = "authUser"
	AuthUsernameKey = "authUsername"
	AuthRoleKey     = "authRole"

	LoginPath = "/login"
)

// Verdict is the outcome of a gate check
type Verdict int

const (
	Allow Verdict = iota
	DenyUnauthenticated
	DenyForbidden
)

// Decision is what the gate concluded about a token. Claims is set only when allowed.
type Decision struct {
	Verdict Verdict
	Claims  *utils.JWTClaims
}

func (d Decision) Allowed() bool { return d.Verdict == Allow }

// Gate decides whether a session token may reach admin pages and mutating endpoints.
// It keeps no state; the same token always gets the same decision until it expires.
type Gate struct {
	jwtUtil *utils.JWTUtil
	role    string
}

// NewGate creates a Gate admitting only the admin role
func NewGate(jwtUtil *utils.JWTUtil) *Gate {
	return &Gate{jwtUtil: jwtUtil, role: model.RoleAdmin}
}

// Verify checks signature, expiry and role. A missing token and a token that fails
// verification for any reason are both unauthenticated.
func (g *Gate) Verify(token string) Decision {
	if token == "" {
		return Decision{Verdict: DenyUnauthenticated}
	}
	claims, err := g.jwtUtil.ValidateToken(token)
	if err != nil {
		return Decision{Verdict: DenyUnauthenticated}
	}
	if claims.Role != g.role {
		return Decision{Verdict: DenyForbidden}
	}
	return Decision{Verdict: Allow, Claims: claims}
}

func (g *Gate) check(c *gin.Context) Decision {
	token, err := c.Cookie(TokenCookie)
	if err != nil {
		token = ""
	}
	return g.Verify(token)
}

// APIGate guards mutating API routes: 401 without a valid session, 403 for non-admins.
func APIGate(g *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.check(c)
		switch decision.Verdict {
		case DenyUnauthenticated:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		case DenyForbidden:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Set(AuthUserKey, decision.Claims.UserID)
		c.Set(AuthUsernameKey, decision.Claims.Username)
		c.Set(AuthRoleKey, decision.Claims.Role)

		c.Next()
	}
}

// PageGate guards admin pages. Every denial is a redirect to the login page.
func PageGate(g *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := g.check(c)
		if !decision.Allowed() {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(AuthUserKey, decision.Claims.UserID)
		c.Set(AuthUsernameKey, decision.Claims.Username)
		c.Set(AuthRoleKey, decision.Claims.Role)

		c.Next()
	}
}

// CurrentUserID returns the user id placed in the context by a gate
func CurrentUserID(c *gin.Context) string {
	return c.GetString(AuthUserKey)
}
