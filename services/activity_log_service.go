package services

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
)

// ActivityLogService handles activity logging
type ActivityLogService struct{}

// NewActivityLogService creates a new activity log service
func NewActivityLogService() *ActivityLogService {
	return &ActivityLogService{}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	AdminID      uuid.UUID
	AdminEmail   string
	Action       string // ActionCreateRestaurant, ActionBlockRestaurant, ...
	ResourceType string // ResourceTypeRestaurant, ResourceTypeCategory
	ResourceID   string
	ResourceName string
	Changes      map[string]any // {before: {...}, after: {...}}
	Status       string         // StatusSuccess or StatusFailed
	ErrorMessage string
	Context      *gin.Context // For IP and User-Agent extraction
}

// LogActivity logs an admin action to the database. Logging failures never
// fail the request that triggered them.
func (s *ActivityLogService) LogActivity(req LogActivityRequest) error {
	if req.AdminID == uuid.Nil {
		log.Printf("[activity-log] warning: AdminID is nil for action %s", req.Action)
		return nil
	}

	ipAddress, userAgent := "", ""
	if req.Context != nil {
		ipAddress = req.Context.ClientIP()
		userAgent = req.Context.GetHeader("User-Agent")
	}

	var changesJSON []byte
	if req.Changes != nil {
		data, err := json.Marshal(req.Changes)
		if err != nil {
			log.Printf("[activity-log] failed to marshal changes: %v", err)
			changesJSON = []byte("{}")
		} else {
			changesJSON = data
		}
	}

	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		AdminID:      req.AdminID,
		AdminEmail:   req.AdminEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		ResourceName: req.ResourceName,
		Changes:      changesJSON,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
		IPAddress:    ipAddress,
		UserAgent:    userAgent,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.Gorm.WithContext(ctx).Create(&entry).Error; err != nil {
		log.Printf("[activity-log] failed to create activity log: %v", err)
		return nil
	}
	return nil
}

// CreateChanges builds the {before, after} diff payload. Objects are run
// through JSON so only exported, serializable state lands in the log.
func CreateChanges(before, after any) map[string]any {
	changes := map[string]any{}
	if m := toMap(before); m != nil {
		changes["before"] = m
	}
	if m := toMap(after); m != nil {
		changes["after"] = m
	}
	if len(changes) == 0 {
		return nil
	}
	return changes
}

func toMap(v any) map[string]any {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var activityLogService *ActivityLogService

// GetActivityLogService returns the global activity log service instance
func GetActivityLogService() *ActivityLogService {
	if activityLogService == nil {
		activityLogService = NewActivityLogService()
	}
	return activityLogService
}

// LogActivity logs via the global service.
func LogActivity(req LogActivityRequest) error {
	return GetActivityLogService().LogActivity(req)
}
