package admin_auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Deactivate every live session for the admin. Other open tabs get a 401 on their next request.
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /api/admin/logout [post]
func AdminLogout(c *gin.Context) {
	adminIDStr, exists := c.Get("adminID")
	if exists {
		log.Printf("[admin.logout] admin logging out: %s", adminIDStr)

		ctx, cancel := config.WithTimeout()
		defer cancel()

		adminID, err := uuid.Parse(adminIDStr.(string))
		if err == nil {
			sessionService := services.GetAdminSessionService()
			if err := sessionService.DeactivateSessions(ctx, adminID); err != nil {
				log.Printf("[admin.logout] failed to deactivate sessions: %v", err)
				// Don't fail the logout even if session deactivation fails
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
