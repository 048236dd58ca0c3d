package restaurant_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/store"
)

var restaurantService *services.RestaurantService

// Init wires the controller to its mutation workflow.
func Init(svc *services.RestaurantService) {
	restaurantService = svc
}

// listStateFromRequest builds the query state from request params. The setter
// order matters: search and status reset the page, the explicit page param is
// applied last, exactly how the dashboard drives its own list state.
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
