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

// UpdateRestaurant godoc
// @Summary Update a restaurant
// @Description Merge the provided fields onto the restaurant
// @Tags CMS - Restaurants
// @Accept json
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param restaurant body models.UpdateRestaurantRequest true "Partial update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/restaurants/{id} [put]
func UpdateRestaurant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid restaurant ID"))
		return
	}

	var req models.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.AbortValidation(c, err)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updated, err := restaurantService.Update(ctx, id, req)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, models.FieldErrorResponse(c, verr.Fields))
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Restaurant not found"))
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update restaurant"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Restaurant updated successfully", updated))
}
