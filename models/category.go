package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a dish category restaurants are grouped under
type Category struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null;index"`
	Description     string    `json:"description" gorm:"type:text"`
	IsActive        bool      `json:"isActive" gorm:"column:is_active;default:true;index"`
	RestaurantCount int       `json:"restaurantCount" gorm:"column:restaurant_count;default:0"`
	CreatedAt       time.Time `json:"createdAt" gorm:"column:created_at;autoCreateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CreateCategoryRequest is the payload for creating a category.
// restaurantCount always starts at 0 and is never set by category edits.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"omitempty"`
	IsActive    *bool  `json:"isActive" binding:"omitempty"`
}

// UpdateCategoryRequest carries a partial category update
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty"`
	IsActive    *bool   `json:"isActive" binding:"omitempty"`
}

// CategoryUpdate is the merge-set applied by the entity store
type CategoryUpdate struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// ToUpdate converts the transport request into a store merge-set.
func (r UpdateCategoryRequest) ToUpdate() CategoryUpdate {
	return CategoryUpdate{
		Name:        r.Name,
		Description: r.Description,
		IsActive:    r.IsActive,
	}
}

// CategoryStats summarizes the category collection
type CategoryStats struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	Inactive         int     `json:"inactive"`
	PercentageActive float64 `json:"percentage_active"`
}
