package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ════════════════════════════════════════════════════════════
// Database Models
// ════════════════════════════════════════════════════════════

// Admin represents a platform administrator
type Admin struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	PasswordHash string     `json:"-" gorm:"not null"` // Never expose in JSON
	Status       string     `json:"status" gorm:"not null;index"` // active, inactive, suspended
	LastLoginAt  *time.Time `json:"last_login_at"`
	JoinedAt     time.Time  `json:"joined_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = "active"
	}
	return nil
}

// TableName specifies the table name
func (Admin) TableName() string {
	return "admins"
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

// AdminLoginRequest is the request to login.
// The dashboard enforces the same constraints client-side: well-formed
// email, password of at least 6 characters.
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ════════════════════════════════════════════════════════════
// Response Models
// ════════════════════════════════════════════════════════════

// AdminResponse is the public response for admin data (no password hash)
type AdminResponse struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at"`
	JoinedAt    time.Time  `json:"joined_at"`
}

// AdminLoginResponse is the wire shape of POST /api/admin/login: the token
// sits at the top level next to success/message, which is what the dashboard
// stores under its "token" slot.
type AdminLoginResponse struct {
	Success bool           `json:"success"`
	Token   string         `json:"token,omitempty"`
	Message string         `json:"message,omitempty"`
	Admin   *AdminResponse `json:"admin,omitempty"`
}

// ToResponse converts an Admin model to AdminResponse
func (a *Admin) ToResponse() AdminResponse {
	return AdminResponse{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		Status:      a.Status,
		LastLoginAt: a.LastLoginAt,
		JoinedAt:    a.JoinedAt,
	}
}
