package admin_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
)

// GetActivityLogs godoc
// @Summary Get admin activity logs
// @Description Paginated audit trail of admin mutations, newest first.
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param admin_id query string false "Filter by admin ID"
// @Param action query string false "Filter by action (e.g., created_restaurant, blocked_restaurant)"
// @Param resource_type query string false "Filter by resource type (restaurant, category)"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /api/admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			if parsed > 100 {
				parsed = 100
			}
			limit = parsed
		}
	}

	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	baseQuery := config.Gorm.WithContext(ctx)
	if adminID := c.Query("admin_id"); adminID != "" {
		baseQuery = baseQuery.Where("admin_id = ?", adminID)
	}
	if action := c.Query("action"); action != "" {
		baseQuery = baseQuery.Where("action = ?", action)
	}
	if resourceType := c.Query("resource_type"); resourceType != "" {
		baseQuery = baseQuery.Where("resource_type = ?", resourceType)
	}

	var logs []models.ActivityLog
	var total int64

	if err := baseQuery.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		log.Printf("[admin.activity] failed to fetch logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if err := baseQuery.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		log.Printf("[admin.activity] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.ActivityLogResponse, len(logs))
	for i := range logs {
		responses[i] = logs[i].ToResponse()
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", gin.H{"logs": responses}, meta))
}
