// @title Restaurant POS Admin API
// @version 1.0
// @description Admin dashboard backend for the restaurant platform
// @host localhost:8000
// @BasePath /api
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/controllers/cms/analytics_controller"
	"github.com/FrazKhan1/res-pos-admin/controllers/cms/category_controller"
	"github.com/FrazKhan1/res-pos-admin/controllers/cms/restaurant_controller"
	"github.com/FrazKhan1/res-pos-admin/routes/cms_routes"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Cloudinary is optional: without credentials, image uploads return 503
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" && apiKey != "" && apiSecret != "" {
		if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️  Cloudinary credentials not set, image uploads disabled")
	}

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Build the entity store and hydrate both collections from Postgres
	entityStore := store.New()
	persister := services.NewGormPersister()
	restaurantService := services.NewRestaurantService(entityStore, persister)
	categoryService := services.NewCategoryService(entityStore, persister)

	ctx, cancel := config.WithTimeout()
	defer cancel()
	if err := restaurantService.Hydrate(ctx); err != nil {
		log.Fatalf("❌ Failed to hydrate restaurants: %v", err)
	}
	if err := categoryService.Hydrate(ctx); err != nil {
		log.Fatalf("❌ Failed to hydrate categories: %v", err)
	}
	log.Printf("✅ Store hydrated: %d restaurants, %d categories",
		entityStore.RestaurantStats().Total, entityStore.CategoryStats().Total)

	restaurant_controller.Init(restaurantService)
	category_controller.Init(categoryService)
	analytics_controller.Init(entityStore)

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api")

	cms_routes.SetupAdminRoutes(api)
	cms_routes.SetupRestaurantRoutes(api, entityStore)
	cms_routes.SetupCategoryRoutes(api, entityStore)
	cms_routes.SetupAnalyticsRoutes(api)
	log.Println("✅ Routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8000")
	router.Run(":8000")
}
