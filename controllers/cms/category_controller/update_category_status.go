package category_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
)

// UpdateCategoryStatus godoc
// @Summary Toggle category status
// @Description Flip the category between active and inactive.
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/categories/{id}/status [put]
func UpdateCategoryStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := categoryService.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category status"))
		return
	}

	message := "Category deactivated successfully"
	if category.IsActive {
		message = "Category activated successfully"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, category))
}
