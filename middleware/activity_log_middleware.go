package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/store"
)

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ActivityLoggingMiddleware logs admin mutations automatically. Must run
// after AdminAuthMiddleware (which sets adminID and adminEmail). Before/after
// snapshots come straight from the entity store, which always reflects the
// latest committed state.
func ActivityLoggingMiddleware(st *store.EntityStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only mutations are logged
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		adminIDRaw, okID := c.Get("adminID")
		adminEmailRaw, okEmail := c.Get("adminEmail")
		if !okID || !okEmail {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}
		adminID, err := uuid.Parse(adminIDRaw.(string))
		if err != nil {
			log.Printf("[activity-logging] failed to parse admin ID: %v", err)
			c.Next()
			return
		}
		adminEmail := adminEmailRaw.(string)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			c.Next()
			return
		}

		resourceID := c.Param("id")
		action := buildAction(c.Request.Method, c.Request.URL.Path, resourceType)

		before, beforeName := snapshotResource(st, resourceType, resourceID)

		c.Next()

		statusCode := c.Writer.Status()
		if statusCode >= 200 && statusCode < 300 {
			after, afterName := snapshotResource(st, resourceType, resourceID)
			name := afterName
			if name == "" {
				name = beforeName
			}
			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: name,
				Changes:      services.CreateChanges(before, after),
				Status:       models.StatusSuccess,
				Context:      c,
			})
			log.Printf("[activity-logging] success: %s by %s", action, adminEmail)
		} else {
			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: beforeName,
				Status:       models.StatusFailed,
				ErrorMessage: "Request failed with status " + http.StatusText(statusCode),
				Context:      c,
			})
			log.Printf("[activity-logging] failed: %s by %s - status %d", action, adminEmail, statusCode)
		}
	}
}

// extractResourceType reads the resource out of the URL path.
// "/api/admin/restaurants/:id/block" → "restaurant".
func extractResourceType(path string) string {
	switch {
	case strings.Contains(path, "/restaurants") || strings.Contains(path, "/restaurant/"):
		return models.ResourceTypeRestaurant
	case strings.Contains(path, "/categories"):
		return models.ResourceTypeCategory
	default:
		return ""
	}
}

// buildAction turns method + path into the log action name, special-casing
// the status sub-routes so block/unblock/toggle read as themselves.
func buildAction(method, path, resourceType string) string {
	switch {
	case strings.HasSuffix(path, "/block"):
		return models.ActionBlockRestaurant
	case strings.HasSuffix(path, "/unblock"):
		return models.ActionUnblockRestaurant
	case strings.HasSuffix(path, "/status") && resourceType == models.ResourceTypeCategory:
		return models.ActionToggleCategory
	}
	verb := methodToActionVerb[method]
	if verb == "" {
		verb = strings.ToLower(method)
	}
	return verb + "_" + resourceType
}

// snapshotResource fetches the current state of the resource from the store.
func snapshotResource(st *store.EntityStore, resourceType, resourceID string) (any, string) {
	id, err := uuid.Parse(resourceID)
	if err != nil {
		return nil, ""
	}
	switch resourceType {
	case models.ResourceTypeRestaurant:
		if r, ok := st.GetRestaurant(id); ok {
			return r, r.Name
		}
	case models.ResourceTypeCategory:
		if c, ok := st.GetCategory(id); ok {
			return c, c.Name
		}
	}
	return nil, ""
}
