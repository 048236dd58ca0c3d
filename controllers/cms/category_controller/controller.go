package category_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/store"
)

var categoryService *services.CategoryService

// Init wires the controller to its mutation workflow.
func Init(svc *services.CategoryService) {
	categoryService = svc
}

// listStateFromRequest builds the query state from request params. Categories
// use the same state machine as restaurants; the status filter maps "active"
// and "inactive" onto the IsActive flag.
func listStateFromRequest(c *gin.Context) store.ListState {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(store.DefaultPageSize)))
	if limit < 1 || limit > 100 {
		limit = store.DefaultPageSize
	}

	ls := store.NewListState(limit)
	ls.SetSearchTerm(c.Query("search"))
	ls.SetStatusFilter(c.DefaultQuery("status", models.StatusFilterAll))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	ls.SetPage(page)
	return ls
}
