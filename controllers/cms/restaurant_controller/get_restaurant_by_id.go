package restaurant_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetRestaurantByID godoc
// @Summary Get a single restaurant
// @Tags CMS - Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/restaurants/{id} [get]
func GetRestaurantByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid restaurant ID"))
		return
	}

	restaurant, ok := restaurantService.Store().GetRestaurant(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Restaurant not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Restaurant fetched", restaurant))
}
