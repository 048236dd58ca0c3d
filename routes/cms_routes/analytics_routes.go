package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/controllers/cms/analytics_controller"
	"github.com/FrazKhan1/res-pos-admin/middleware"
)

// SetupAnalyticsRoutes sets up dashboard analytics routes
func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/admin/analytics")
	analytics.Use(middleware.AdminAuthMiddleware())

	analytics.GET("/overview", analytics_controller.GetOverview)
	analytics.GET("/revenue-trend", analytics_controller.GetRevenueTrend)
	analytics.GET("/top-restaurants", analytics_controller.GetTopRestaurants)
	analytics.GET("/category-performance", analytics_controller.GetCategoryPerformance)
}
