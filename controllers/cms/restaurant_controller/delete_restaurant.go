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

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Remove the restaurant and all associated data. The dashboard resets to page 1 afterwards.
// @Tags CMS - Restaurants
// @Produce json
// @Param id path string true "Restaurant ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/restaurants/{id} [delete]
func DeleteRestaurant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid restaurant ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := restaurantService.Delete(ctx, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Restaurant not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete restaurant"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Restaurant deleted successfully", nil))
}
