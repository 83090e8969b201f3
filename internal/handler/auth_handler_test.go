package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"injai_channel/internal/middleware"
	"injai_channel/internal/model"
	"injai_channel/internal/service"
	"injai_channel/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(r http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.TokenCookie {
			return c
		}
	}
	return nil
}

func authRouter(t *testing.T, secure bool) (*gin.Engine, *utils.JWTUtil) {
	t.Helper()
	jwtUtil := utils.NewJWTUtil("handler-secret", 168)
	repo := map[string]*model.User{}
	svc := &stubAuthService{
		signup: func(username, email, password string) (*model.User, string, error) {
			if len(password) < service.MinPasswordLength {
				return nil, "", &service.ValidationError{Message: "Password must be at least 6 characters long"}
			}
			if _, ok := repo[email]; ok {
				return nil, "", service.ErrUserAlreadyExists
			}
			user := &model.User{ID: "u-1", Username: username, Email: email, Role: model.RoleAdmin, PasswordHash: "hash"}
			repo[email] = user
			token, err := jwtUtil.GenerateToken(user.ID, user.Username, user.Role)
			return user, token, err
		},
		login: func(email, username, password string) (*model.User, string, error) {
			user, ok := repo[email]
			if !ok || password != "secret1" {
				return nil, "", service.ErrInvalidCredentials
			}
			token, err := jwtUtil.GenerateToken(user.ID, user.Username, user.Role)
			return user, token, err
		},
	}

	r := gin.New()
	h := NewAuthHandler(svc, CookieOptions{MaxAge: int(jwtUtil.TTL().Seconds()), Secure: secure}, zerolog.Nop())
	h.RegisterAuthRoutes(r.Group("/api"), middleware.APIGate(middleware.NewGate(jwtUtil)))
	return r, jwtUtil
}

func TestAuthHandler_Signup_SetsCookie(t *testing.T) {
	r, jwtUtil := authRouter(t, true)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"admin"`)
	assert.NotContains(t, w.Body.String(), "hash")

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 604800, cookie.MaxAge)

	claims, err := jwtUtil.ValidateToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthHandler_Signup_Errors(t *testing.T) {
	r, _ := authRouter(t, false)

	w := doJSON(r, http.MethodPost, "/api/auth/signup", `{"username":"alice","email":"alice@x.com","password":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Password must be at least 6 characters long"}`, w.Body.String())

	doJSON(r, http.MethodPost, "/api/auth/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`)
	w = doJSON(r, http.MethodPost, "/api/auth/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Nil(t, sessionCookie(w))

	w = doJSON(r, http.MethodPost, "/api/auth/signup", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	r, _ := authRouter(t, false)
	doJSON(r, http.MethodPost, "/api/auth/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`)

	wrong := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"wrong"}`)
	unknown := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"nobody@x.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Nil(t, sessionCookie(wrong))
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestAuthHandler_Login(t *testing.T) {
	r, _ := authRouter(t, false)
	doJSON(r, http.MethodPost, "/api/auth/signup", `{"username":"alice","email":"alice@x.com","password":"secret1"}`)

	w := doJSON(r, http.MethodPost, "/api/auth/login", `{"email":"alice@x.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Login successful"`)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.False(t, cookie.Secure)

	me := doJSON(r, http.MethodGet, "/api/auth/me", "", cookie)
	assert.Equal(t, http.StatusOK, me.Code)
	assert.JSONEq(t, `{"user":{"id":"u-1","username":"alice","role":"admin"}}`, me.Body.String())
}

func TestAuthHandler_Logout(t *testing.T) {
	r, _ := authRouter(t, false)

	w := doJSON(r, http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
