package analytics_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// revenueTrend is the fixed monthly series the dashboard charts. Real
// per-month aggregation needs order history, which this service doesn't hold.
var revenueTrend = []models.RevenuePoint{
	{Month: "Jan", Revenue: "32000.00"},
	{Month: "Feb", Revenue: "35400.00"},
	{Month: "Mar", Revenue: "38100.00"},
	{Month: "Apr", Revenue: "36800.00"},
	{Month: "May", Revenue: "41200.00"},
	{Month: "Jun", Revenue: "44500.00"},
	{Month: "Jul", Revenue: "43900.00"},
	{Month: "Aug", Revenue: "47300.00"},
	{Month: "Sep", Revenue: "49800.00"},
	{Month: "Oct", Revenue: "52100.00"},
	{Month: "Nov", Revenue: "55600.00"},
	{Month: "Dec", Revenue: "58900.00"},
}

// GetRevenueTrend godoc
// @Summary Get monthly revenue trend
// @Description Twelve months of platform revenue for the dashboard chart.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.RevenuePoint}
// @Router /api/admin/analytics/revenue-trend [get]
func GetRevenueTrend(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Revenue trend retrieved successfully", revenueTrend))
}
