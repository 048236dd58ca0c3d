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

// UpdateCategory godoc
// @Summary Update a category
// @Description Partial update; only the provided fields change.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/categories/{id} [put]
func UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.AbortValidation(c, err)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := categoryService.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
}
