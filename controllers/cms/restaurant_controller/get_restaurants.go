package restaurant_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetRestaurants godoc
// @Summary List restaurants with search, status filter and pagination
// @Description Case-insensitive substring search over name/city/state, optional status filter, 10 per page
// @Tags CMS - Restaurants
// @Produce json
// @Param search query string false "Search term"
// @Param status query string false "all | active | inactive | blocked" default(all)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/restaurants [get]
func GetRestaurants(c *gin.Context) {
	ls := listStateFromRequest(c)

	items, meta := restaurantService.Store().ListRestaurants(ls.Query())
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Restaurants fetched", items, &meta))
}
