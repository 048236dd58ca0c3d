package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/controllers/cms/category_controller"
	"github.com/FrazKhan1/res-pos-admin/middleware"
	"github.com/FrazKhan1/res-pos-admin/store"
)

// SetupCategoryRoutes sets up category CRUD routes
func SetupCategoryRoutes(rg *gin.RouterGroup, st *store.EntityStore) {
	categories := rg.Group("/admin/categories")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	categories.GET("", category_controller.GetCategories)
	categories.GET("/stats", category_controller.GetCategoryStats)
	categories.GET("/:id", category_controller.GetCategoryByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════

	protected := categories.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware(st))
	{
		protected.POST("", category_controller.CreateCategory)
		protected.PUT("/:id", category_controller.UpdateCategory)
		protected.PUT("/:id/status", category_controller.UpdateCategoryStatus)
		protected.DELETE("/:id", category_controller.DeleteCategory)
	}
}
