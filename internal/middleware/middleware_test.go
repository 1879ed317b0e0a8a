package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/studydash/internal/dto"
	"github.com/lshigami/studydash/internal/model"
	"github.com/lshigami/studydash/internal/service"
	"github.com/stretchr/testify/assert"
)

type stubAuth struct {
	service.AuthService
	users map[string]*model.User
}

func (s stubAuth) Authenticate(_ context.Context, key string) (*model.User, error) {
	if u, ok := s.users[key]; ok {
		return u, nil
	}
	return nil, service.ErrUnauthorized
}

func TestTokenFromHeader(t *testing.T) {
	cases := map[string]string{
		"Token abc123":   "abc123",
		"Bearer abc123":  "abc123",
		"token  abc123 ": "abc123",
		"Basic abc123":   "",
		"abc123":         "",
		"":               "",
	}
	for header, want := range cases {
		assert.Equal(t, want, TokenFromHeader(header), header)
	}
}

func TestRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := stubAuth{users: map[string]*model.User{"good": {ID: 7, Username: "alice"}}}

	r := gin.New()
	r.GET("/me", RequireToken(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": UserID(c), "username": Username(c)})
	})

	for _, header := range []string{"", "Token bad", "Basic good"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token good")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7,"username":"alice"}`, w.Body.String())
}

func TestHostCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HostCheck([]string{"localhost", ".up.railway.app"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := map[string]int{
		"localhost:8000":          http.StatusOK,
		"LOCALHOST":               http.StatusOK,
		"up.railway.app":          http.StatusOK,
		"study.up.railway.app":    http.StatusOK,
		"evil.com":                http.StatusBadRequest,
		"notup.railway.app":       http.StatusBadRequest,
		"localhost.evil.com:8000": http.StatusBadRequest,
	}
	for host, code := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Host = host
		r.ServeHTTP(w, req)
		assert.Equal(t, code, w.Code, host)
		if code == http.StatusBadRequest {
			assert.JSONEq(t, `{"error":"Invalid host"}`, w.Body.String())
		}
	}

	w := httptest.NewRecorder()
	open := gin.New()
	open.Use(HostCheck([]string{"*"}))
	open.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"}) })
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "anything.example"
	open.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStripTrailingSlash(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/schedule", func(c *gin.Context) { c.String(http.StatusCreated, c.Request.URL.Path) })
	r.GET("/api/", func(c *gin.Context) { c.String(http.StatusOK, "root") })
	h := StripTrailingSlash("/api/", r)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/schedule/", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/schedule", w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
