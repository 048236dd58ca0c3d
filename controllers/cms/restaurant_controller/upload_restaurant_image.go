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

const maxRestaurantImageSize = 5 << 20 // 5 MB

// UploadRestaurantImage godoc
// @Summary Upload a restaurant image
// @Description Upload an image file to Cloudinary and attach its URL to the restaurant.
// @Tags CMS - Restaurants
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Restaurant ID"
// @Param image formData file true "Image file (max 5MB)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/restaurants/{id}/image [post]
func UploadRestaurantImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid restaurant ID"))
		return
	}

	cld := services.GetCloudinaryService()
	if cld == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if fileHeader.Size > maxRestaurantImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image must be smaller than 5MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read image file"))
		return
	}
	defer file.Close()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	imageURL, err := cld.UploadImage(ctx, file, id.String(), services.RestaurantImageFolder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	restaurant, err := restaurantService.SetImageURL(ctx, id, imageURL)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Restaurant not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image URL"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", restaurant))
}
