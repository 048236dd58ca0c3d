package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetCategoryStats godoc
// @Summary Get category stats
// @Description Total, active and inactive category counts for the dashboard.
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.CategoryStats}
// @Router /api/admin/categories/stats [get]
func GetCategoryStats(c *gin.Context) {
	stats := categoryService.Store().CategoryStats()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category stats retrieved successfully", stats))
}
