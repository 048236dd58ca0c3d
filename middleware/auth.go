package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
)

// ExtractToken pulls the bearer token from the auth cookie or the
// Authorization header. Empty string means unauthenticated.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie("admin_token"); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AdminAuthMiddleware is the session guard on every protected route: a
// request without a live, verifiable bearer token gets a 401 and the handler
// never runs. Liveness comes from Redis, so a logout in one tab invalidates
// the token for every tab's next request.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			c.Abort()
			return
		}

		claims, err := services.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		sessionService := services.GetAdminSessionService()
		tokenHash := services.GetAdminAuthService().HashToken(token)

		alive, err := sessionService.SessionAlive(ctx, tokenHash)
		if err != nil {
			log.Printf("[auth] session lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
			c.Abort()
			return
		}
		if !alive {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session expired"))
			c.Abort()
			return
		}

		if err := sessionService.UpdateSessionActivity(ctx, tokenHash); err != nil {
			log.Printf("[auth] failed to update session activity: %v", err)
			// Don't abort - session update failure shouldn't block the request
		}

		c.Set("adminID", claims.AdminID)
		c.Set("adminEmail", claims.Email)

		c.Next()
	}
}

// GetAdminIDFromContext returns the authenticated admin's id.
func GetAdminIDFromContext(c *gin.Context) (string, bool) {
	adminID, exists := c.Get("adminID")
	if !exists {
		return "", false
	}
	return adminID.(string), true
}

// GetAdminEmailFromContext returns the authenticated admin's email.
func GetAdminEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("adminEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
