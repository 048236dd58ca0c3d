package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant status values
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBlocked  = "blocked"

	// StatusFilterAll matches every status in list queries.
	StatusFilterAll = "all"
)

// Defaults applied when a restaurant is created without explicit values.
// Commission and revenue travel as decimal-formatted strings end to end to
// avoid float rounding drift.
const (
	DefaultCommissionRate = "5.00"
	DefaultRevenue        = "0.00"
)

// Restaurant represents a restaurant on the platform
type Restaurant struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string    `json:"name" gorm:"not null;index"`
	Cuisine        string    `json:"cuisine" gorm:"not null"`
	OwnerName      string    `json:"ownerName" gorm:"column:owner_name;not null"`
	Phone          string    `json:"phone" gorm:"not null"`
	Email          string    `json:"email" gorm:"not null"`
	Address        string    `json:"address" gorm:"not null"`
	City           string    `json:"city" gorm:"not null"`
	State          string    `json:"state" gorm:"not null"`
	Status         string    `json:"status" gorm:"type:varchar(20);default:'active';check:status IN ('active','inactive','blocked');index"`
	CommissionRate string    `json:"commissionRate" gorm:"column:commission_rate;type:decimal(5,2);default:5.00"`
	Revenue        string    `json:"revenue" gorm:"type:decimal(12,2);default:0.00"`
	JoinedDate     time.Time `json:"joinedDate" gorm:"column:joined_date;autoCreateTime"`
	ImageURL       string    `json:"imageUrl,omitempty" gorm:"column:image_url;type:text"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	return nil
}

// TableName specifies the table name
func (Restaurant) TableName() string {
	return "restaurants"
}

// ValidStatus reports whether s is one of the three enumerated restaurant statuses.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusBlocked
}

// ValidStatusFilter reports whether s is usable as a list filter ("all" included).
func ValidStatusFilter(s string) bool {
	return s == StatusFilterAll || ValidStatus(s)
}

// ════════════════════════════════════════════════════════════
// Request Models
// ════════════════════════════════════════════════════════════

// CreateRestaurantRequest is the payload for POST /api/restaurant/create.
// id and joinedDate are assigned server-side and never accepted from the client.
type CreateRestaurantRequest struct {
	Name           string `json:"name" binding:"required"`
	Cuisine        string `json:"cuisine" binding:"required"`
	OwnerName      string `json:"ownerName" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
	Status         string `json:"status" binding:"omitempty,oneof=active inactive blocked"`
	CommissionRate string `json:"commissionRate" binding:"omitempty"`
	Revenue        string `json:"revenue" binding:"omitempty"`
	ImageURL       string `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateRestaurantRequest carries a partial update; nil fields are left untouched.
type UpdateRestaurantRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1"`
	Cuisine        *string `json:"cuisine" binding:"omitempty,min=1"`
	OwnerName      *string `json:"ownerName" binding:"omitempty,min=1"`
	Phone          *string `json:"phone" binding:"omitempty,min=1"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Address        *string `json:"address" binding:"omitempty,min=1"`
	City           *string `json:"city" binding:"omitempty,min=1"`
	State          *string `json:"state" binding:"omitempty,min=1"`
	Status         *string `json:"status" binding:"omitempty,oneof=active inactive blocked"`
	CommissionRate *string `json:"commissionRate" binding:"omitempty"`
	Revenue        *string `json:"revenue" binding:"omitempty"`
	ImageURL       *string `json:"imageUrl" binding:"omitempty,url"`
}

// RestaurantUpdate is the merge-set applied by the entity store. Separate from
// the transport type so the store does not depend on binding tags.
type RestaurantUpdate struct {
	Name           *string
	Cuisine        *string
	OwnerName      *string
	Phone          *string
	Email          *string
	Address        *string
	City           *string
	State          *string
	Status         *string
	CommissionRate *string
	Revenue        *string
	ImageURL       *string
}

// ToUpdate converts the transport request into a store merge-set.
func (r UpdateRestaurantRequest) ToUpdate() RestaurantUpdate {
	return RestaurantUpdate{
		Name:           r.Name,
		Cuisine:        r.Cuisine,
		OwnerName:      r.OwnerName,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		Status:         r.Status,
		CommissionRate: r.CommissionRate,
		Revenue:        r.Revenue,
		ImageURL:       r.ImageURL,
	}
}

// ════════════════════════════════════════════════════════════
// Stats
// ════════════════════════════════════════════════════════════

// RestaurantStats summarizes the collection for the dashboard cards
type RestaurantStats struct {
	Total        int    `json:"total"`
	Active       int    `json:"active"`
	Inactive     int    `json:"inactive"`
	Blocked      int    `json:"blocked"`
	TotalRevenue string `json:"total_revenue"`
}
