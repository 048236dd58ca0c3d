package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Add a new cuisine category. New categories appear at the top of the list.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CreateCategoryRequest true "Category payload"
// @Success 201 {object} models.ApiResponse{data=models.Category}
// @Failure 400 {object} models.ApiResponse
// @Router /api/admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.AbortValidation(c, err)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	category, err := categoryService.Create(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category added successfully", category))
}
