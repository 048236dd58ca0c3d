package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents an admin action log entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID      uuid.UUID      `json:"admin_id" gorm:"type:uuid;not null;index:idx_activity_admin_date,sort:desc"`
	AdminEmail   string         `json:"admin_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`      // created_restaurant, blocked_restaurant, deleted_category, ...
	ResourceType string         `json:"resource_type" gorm:"not null;index"` // restaurant, category
	ResourceID   string         `json:"resource_id" gorm:"not null;index"`
	ResourceName string         `json:"resource_name"`
	Changes      datatypes.JSON `json:"changes" gorm:"type:jsonb"` // {before: {...}, after: {...}}
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_admin_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ActivityLogResponse is the response for activity log data
type ActivityLogResponse struct {
	ID           uuid.UUID      `json:"id"`
	AdminID      uuid.UUID      `json:"admin_id"`
	AdminEmail   string         `json:"admin_email"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id"`
	ResourceName string         `json:"resource_name"`
	Changes      map[string]any `json:"changes"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ToResponse converts ActivityLog to ActivityLogResponse
func (al *ActivityLog) ToResponse() ActivityLogResponse {
	changes := make(map[string]any)
	if al.Changes != nil {
		_ = json.Unmarshal(al.Changes, &changes)
	}
	return ActivityLogResponse{
		ID:           al.ID,
		AdminID:      al.AdminID,
		AdminEmail:   al.AdminEmail,
		Action:       al.Action,
		ResourceType: al.ResourceType,
		ResourceID:   al.ResourceID,
		ResourceName: al.ResourceName,
		Changes:      changes,
		Status:       al.Status,
		ErrorMessage: al.ErrorMessage,
		IPAddress:    al.IPAddress,
		UserAgent:    al.UserAgent,
		CreatedAt:    al.CreatedAt,
	}
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	// Restaurant Actions
	ActionCreateRestaurant  = "created_restaurant"
	ActionUpdateRestaurant  = "updated_restaurant"
	ActionDeleteRestaurant  = "deleted_restaurant"
	ActionBlockRestaurant   = "blocked_restaurant"
	ActionUnblockRestaurant = "unblocked_restaurant"

	// Category Actions
	ActionCreateCategory = "created_category"
	ActionUpdateCategory = "updated_category"
	ActionDeleteCategory = "deleted_category"
	ActionToggleCategory = "toggled_category"

	// Resource Types
	ResourceTypeRestaurant = "restaurant"
	ResourceTypeCategory   = "category"

	// Status
	StatusSuccess = "success"
	StatusFailed  = "failed"
)
