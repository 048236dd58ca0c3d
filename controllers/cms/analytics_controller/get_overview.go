package analytics_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
)

const (
	overviewCacheKey = "analytics:overview"
	overviewCacheTTL = 5 * time.Minute
)

// GetOverview godoc
// @Summary Get analytics overview
// @Description Dashboard stat cards: restaurant counts, total revenue and the month-over-month growth figures. Cached for 5 minutes.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Router /api/admin/analytics/overview [get]
func GetOverview(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if raw, err := config.RedisClient.Get(ctx, overviewCacheKey).Bytes(); err == nil {
		var cached models.AnalyticsOverview
		if json.Unmarshal(raw, &cached) == nil {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview retrieved successfully", cached))
			return
		}
	} else if err != redis.Nil {
		log.Printf("[analytics.overview] cache read failed: %v", err)
	}

	stats := entityStore.RestaurantStats()

	// Growth figures are static placeholders until period-over-period data
	// exists; order volume comes from the same snapshot the dashboard ships.
	overview := models.AnalyticsOverview{
		TotalRestaurants:  stats.Total,
		TotalGrowth:       12.5,
		ActiveRestaurants: stats.Active,
		ActiveGrowth:      8.2,
		TotalRevenue:      stats.TotalRevenue,
		RevenueGrowth:     15.3,
		TotalOrders:       1248,
		OrdersGrowth:      22.1,
	}

	if payload, err := json.Marshal(overview); err == nil {
		if err := config.RedisClient.Set(ctx, overviewCacheKey, payload, overviewCacheTTL).Err(); err != nil {
			log.Printf("[analytics.overview] cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview retrieved successfully", overview))
}
