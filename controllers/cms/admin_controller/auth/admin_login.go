package admin_auth_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/middleware"
	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/utils"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate with email and password. Returns a bearer token at the top level of the response and creates a Redis session.
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.AdminLoginResponse
// @Failure 400 {object} models.AdminLoginResponse "Invalid credentials"
// @Failure 403 {object} models.AdminLoginResponse "Account suspended"
// @Failure 429 {object} models.AdminLoginResponse "Too many failed attempts"
// @Router /api/admin/login [post]
func AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	// A live session means the dashboard never even shows the login screen;
	// answer the same way if it asks anyway.
	if token := middleware.ExtractToken(c); token != "" {
		if claims, err := services.VerifyAdminJWT(token); err == nil {
			tokenHash := services.GetAdminAuthService().HashToken(token)
			if alive, err := services.GetAdminSessionService().SessionAlive(c.Request.Context(), tokenHash); err == nil && alive {
				log.Printf("[admin.login] already authenticated: %s", claims.Email)
				c.JSON(http.StatusOK, models.AdminLoginResponse{
					Success: true,
					Token:   token,
					Message: "Already logged in",
				})
				return
			}
		}
	}

	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.AdminLoginResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	if utils.IsLoginLockedOut(req.Email) {
		c.JSON(http.StatusTooManyRequests, models.AdminLoginResponse{
			Success: false,
			Message: "Too many failed attempts. Try again in 15 minutes",
		})
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).
		Where("email = ?", req.Email).
		First(&admin).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			log.Printf("[admin.login] user not found: %s", req.Email)
			utils.RecordFailedLogin(c, req.Email)
			c.JSON(http.StatusBadRequest, models.AdminLoginResponse{
				Success: false,
				Message: "Invalid email or password",
			})
		} else {
			log.Printf("[admin.login] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.AdminLoginResponse{
				Success: false,
				Message: "Server error",
			})
		}
		return
	}

	if admin.Status == "suspended" {
		log.Printf("[admin.login] suspended account attempt: %s", req.Email)
		c.JSON(http.StatusForbidden, models.AdminLoginResponse{
			Success: false,
			Message: "Account is suspended",
		})
		return
	}

	authService := services.GetAdminAuthService()
	if !authService.VerifyPassword(admin.PasswordHash, req.Password) {
		log.Printf("[admin.login] invalid password: %s", req.Email)
		if locked := utils.RecordFailedLogin(c, req.Email); locked {
			c.JSON(http.StatusTooManyRequests, models.AdminLoginResponse{
				Success: false,
				Message: "Too many failed attempts. Try again in 15 minutes",
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.AdminLoginResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	now := time.Now()
	if err := config.Gorm.WithContext(ctx).
		Model(&admin).
		Update("last_login_at", now).Error; err != nil {
		log.Printf("[admin.login] failed to update last login: %v", err)
		c.JSON(http.StatusInternalServerError, models.AdminLoginResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}
	admin.LastLoginAt = &now
	admin.Status = authService.GetAdminStatus(admin.Status, admin.LastLoginAt)

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.AdminLoginResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	sessionService := services.GetAdminSessionService()
	if _, err := sessionService.CreateSession(
		ctx,
		admin.ID,
		token,
		utils.GetClientIP(c),
		c.Request.UserAgent(),
	); err != nil {
		log.Printf("[admin.login] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.AdminLoginResponse{
			Success: false,
			Message: "Server error",
		})
		return
	}

	utils.ClearFailedLogins(req.Email)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"admin_token",
		token,
		24*60*60,
		"/",
		"",
		false,
		true,
	)

	log.Printf("[admin.login] success: %s (%s)", admin.Email, admin.ID)

	adminResp := admin.ToResponse()
	c.JSON(http.StatusOK, models.AdminLoginResponse{
		Success: true,
		Token:   token,
		Message: "Login successful",
		Admin:   &adminResp,
	})
}
