package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetCategoryByID godoc
// @Summary Get a category
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse{data=models.Category}
// @Failure 404 {object} models.ApiResponse
// @Router /api/admin/categories/{id} [get]
func GetCategoryByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	category, ok := categoryService.Store().GetCategory(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category retrieved successfully", category))
}
