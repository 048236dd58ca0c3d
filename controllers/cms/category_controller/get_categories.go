package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetCategories godoc
// @Summary List categories
// @Description Paginated category list with search over name and description plus an active/inactive filter.
// @Tags CMS - Categories
// @Produce json
// @Param search query string false "Search term"
// @Param status query string false "Status filter (all, active, inactive)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Router /api/admin/categories [get]
func GetCategories(c *gin.Context) {
	ls := listStateFromRequest(c)
	page, meta := categoryService.Store().ListCategories(ls.Query())
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories retrieved successfully", page, &meta))
}
