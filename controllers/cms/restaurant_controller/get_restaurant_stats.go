package restaurant_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetRestaurantStats godoc
// @Summary Get restaurant stats
// @Description Counts by status plus total platform revenue, for the dashboard stat cards.
// @Tags CMS - Restaurants
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.RestaurantStats}
// @Router /api/admin/restaurants/stats [get]
func GetRestaurantStats(c *gin.Context) {
	stats := restaurantService.Store().RestaurantStats()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Restaurant stats retrieved successfully", stats))
}
