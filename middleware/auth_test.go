package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/middleware"
	"github.com/FrazKhan1/res-pos-admin/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/protected", middleware.AdminAuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestExtractTokenFromBearerHeader(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer abc123")

	assert.Equal(t, "abc123", middleware.ExtractToken(c))
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: "admin_token", Value: "cookie-token"})
	c.Request.Header.Set("Authorization", "Bearer header-token")

	assert.Equal(t, "cookie-token", middleware.ExtractToken(c))
}

func TestExtractTokenMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "abc123", "Basic abc123", "Bearer"} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		assert.Empty(t, middleware.ExtractToken(c), "header %q", header)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := newGuardedRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "no token provided")
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	require.NoError(t, services.InitJWTService("auth-test-secret"))
	router := newGuardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestAuthMiddlewareRejectsTokenSignedWithWrongSecret(t *testing.T) {
	require.NoError(t, services.InitJWTService("secret-a"))
	token, err := services.GenerateAdminJWT("0192f3a1-0000-7000-8000-000000000001", "admin@respos.dev")
	require.NoError(t, err)

	require.NoError(t, services.InitJWTService("secret-b"))
	router := newGuardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
