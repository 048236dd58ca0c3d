// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track failed admin login attempts and lock out brute force
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"net"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/config"
)

const (
	// MaxFailedLogins before an email is temporarily locked out.
	MaxFailedLogins = 5
	// LoginLockoutWindow is both the counting window and the lockout length.
	LoginLockoutWindow = 15 * time.Minute
)

func failedLoginKey(email string) string {
	return "login_failures:" + strings.ToLower(email)
}

// RecordFailedLogin bumps the failure counter for an email and returns true
// once the account is locked out. The counter expires with the window.
func RecordFailedLogin(c *gin.Context, email string) bool {
	key := failedLoginKey(email)

	count, err := config.RedisClient.Incr(config.Ctx, key).Result()
	if err != nil {
		log.Printf("❌ Failed to record login failure: %v", err)
		return false
	}
	if count == 1 {
		config.RedisClient.Expire(config.Ctx, key, LoginLockoutWindow)
	}

	if count >= MaxFailedLogins {
		log.Printf("⚠️ Login lockout for %s after %d failures (IP: %s)", email, count, c.ClientIP())
		return true
	}
	return false
}

// IsLoginLockedOut reports whether an email has exhausted its attempts.
func IsLoginLockedOut(email string) bool {
	count, err := config.RedisClient.Get(config.Ctx, failedLoginKey(email)).Int64()
	if err != nil {
		return false
	}
	return count >= MaxFailedLogins
}

// ClearFailedLogins resets the counter after a successful login.
func ClearFailedLogins(email string) {
	if err := config.RedisClient.Del(config.Ctx, failedLoginKey(email)).Err(); err != nil {
		log.Printf("❌ Failed to clear login failures: %v", err)
	}
}

// GetClientIP gets the real client IP (handles proxies)
func GetClientIP(c *gin.Context) string {
	// Try X-Forwarded-For first (if behind proxy)
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			ip := strings.TrimSpace(ips[0])
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	// Try X-Real-IP
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	// Fallback to RemoteAddr
	return c.ClientIP()
}
