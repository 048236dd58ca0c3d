package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/controllers/cms/restaurant_controller"
	"github.com/FrazKhan1/res-pos-admin/middleware"
	"github.com/FrazKhan1/res-pos-admin/store"
)

// SetupRestaurantRoutes sets up restaurant CRUD and moderation routes
func SetupRestaurantRoutes(rg *gin.RouterGroup, st *store.EntityStore) {
	restaurants := rg.Group("/admin/restaurants")

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════

	restaurants.GET("", restaurant_controller.GetRestaurants)
	restaurants.GET("/stats", restaurant_controller.GetRestaurantStats)
	restaurants.GET("/:id", restaurant_controller.GetRestaurantByID)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth + Activity Logging)
	// ════════════════════════════════════════════════════════════

	protected := restaurants.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	protected.Use(middleware.ActivityLoggingMiddleware(st))
	{
		protected.POST("", restaurant_controller.CreateRestaurant)
		protected.PUT("/:id", restaurant_controller.UpdateRestaurant)
		protected.PUT("/:id/block", restaurant_controller.BlockRestaurant)
		protected.PUT("/:id/unblock", restaurant_controller.UnblockRestaurant)
		protected.POST("/:id/image", restaurant_controller.UploadRestaurantImage)
		protected.DELETE("/:id", restaurant_controller.DeleteRestaurant)
	}

	// The dashboard posts new restaurants to /api/restaurant/create; keep that
	// path as an alias of the canonical create endpoint.
	legacy := rg.Group("/restaurant")
	legacy.Use(middleware.AdminAuthMiddleware())
	legacy.Use(middleware.ActivityLoggingMiddleware(st))
	{
		legacy.POST("/create", restaurant_controller.CreateRestaurant)
	}
}
