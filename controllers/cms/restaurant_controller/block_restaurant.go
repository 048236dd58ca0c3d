package restaurant_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
)

// BlockRestaurant godoc
// @Summary Block a restaurant
// @Description Mark the restaurant as blocked so it no longer appears on the consumer side.
// @Tags CMS - Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/restaurants/{id}/block [put]
func BlockRestaurant(c *gin.Context) {
	setRestaurantStatus(c, true)
}

// UnblockRestaurant godoc
// @Summary Unblock a restaurant
// @Description Return a blocked restaurant to active status.
// @Tags CMS - Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/restaurants/{id}/unblock [put]
func UnblockRestaurant(c *gin.Context) {
	setRestaurantStatus(c, false)
}

func setRestaurantStatus(c *gin.Context, block bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid restaurant ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var restaurant models.Restaurant
	var message string
	if block {
		restaurant, err = restaurantService.Block(ctx, id)
		message = "Restaurant blocked successfully"
	} else {
		restaurant, err = restaurantService.Unblock(ctx, id)
		message = "Restaurant unblocked successfully"
	}
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Restaurant not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update restaurant status"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, message, restaurant))
}
