package cms_routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/controllers/cms/admin_controller"
	admin_auth "github.com/FrazKhan1/res-pos-admin/controllers/cms/admin_controller/auth"
	"github.com/FrazKhan1/res-pos-admin/middleware"
)

// SetupAdminRoutes sets up auth and admin management routes
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RateLimiter(100, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	admin.POST("/login", admin_auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.POST("/logout", admin_auth.AdminLogout)
		protected.GET("/me", admin_auth.GetAdminMe)

		// Activity logs
		protected.GET("/activity-logs", admin_controller.GetActivityLogs)
	}
}
