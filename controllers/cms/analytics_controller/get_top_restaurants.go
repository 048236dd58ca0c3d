package analytics_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetTopRestaurants godoc
// @Summary Get top performing restaurants
// @Description Restaurants ranked by revenue, highest first.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Number of rows (default: 5, max: 20)"
// @Success 200 {object} models.ApiResponse{data=[]models.TopRestaurant}
// @Router /api/admin/analytics/top-restaurants [get]
func GetTopRestaurants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if limit < 1 || limit > 20 {
		limit = 5
	}

	ranked := entityStore.TopRestaurantsByRevenue(limit)

	rows := make([]models.TopRestaurant, len(ranked))
	for i, r := range ranked {
		rows[i] = models.TopRestaurant{
			Name:    r.Name,
			Revenue: r.Revenue,
			Growth:  "+12%",
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top restaurants retrieved successfully", rows))
}
