package services

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminAuthService handles admin authentication operations
type AdminAuthService struct{}

// NewAdminAuthService creates a new admin auth service
func NewAdminAuthService() *AdminAuthService {
	return &AdminAuthService{}
}

// ════════════════════════════════════════════════════════════
// Password Management
// ════════════════════════════════════════════════════════════

// HashPassword hashes a password using bcrypt
func (s *AdminAuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AdminAuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets the dashboard's minimum:
// 6 characters.
func (s *AdminAuthService) ValidatePassword(password string) bool {
	return len(password) >= 6
}

// ════════════════════════════════════════════════════════════
// Token Hashing
// ════════════════════════════════════════════════════════════

// HashToken hashes a bearer token with SHA256. Sessions are stored under the
// hash so a Redis dump never leaks usable tokens.
func (s *AdminAuthService) HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// ════════════════════════════════════════════════════════════
// Admin Status Management
// ════════════════════════════════════════════════════════════

// IsStatusInactive checks if an admin should be marked as inactive.
// Inactive if last login is more than 7 days ago.
func (s *AdminAuthService) IsStatusInactive(lastLoginAt *time.Time) bool {
	if lastLoginAt == nil {
		// Never logged in, not yet inactive
		return false
	}
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	return lastLoginAt.Before(sevenDaysAgo)
}

// GetAdminStatus calculates the current status based on last login.
// Suspended stays suspended; stale logins go inactive; otherwise active.
func (s *AdminAuthService) GetAdminStatus(currentStatus string, lastLoginAt *time.Time) string {
	if currentStatus == "suspended" {
		return "suspended"
	}
	if s.IsStatusInactive(lastLoginAt) {
		return "inactive"
	}
	return "active"
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var adminAuthService *AdminAuthService

// GetAdminAuthService returns the global admin auth service instance
func GetAdminAuthService() *AdminAuthService {
	if adminAuthService == nil {
		adminAuthService = NewAdminAuthService()
	}
	return adminAuthService
}
