package restaurant_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
)

// CreateRestaurant godoc
// @Summary Create a restaurant
// @Description Validate the payload, persist, and prepend the new restaurant to the collection
// @Tags CMS - Restaurants
// @Accept json
// @Produce json
// @Param restaurant body models.CreateRestaurantRequest true "New restaurant"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Validation failed"
// @Router /api/restaurant/create [post]
func CreateRestaurant(c *gin.Context) {
	var req models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.AbortValidation(c, err)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	created, err := restaurantService.Create(ctx, req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.FieldErrorResponse(c, verr.Fields))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to add restaurant"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Restaurant added successfully", created))
}
