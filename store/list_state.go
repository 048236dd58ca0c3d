package store

import "github.com/FrazKhan1/res-pos-admin/models"

// ListState is the dashboard's transient query state: search term, status
// filter, current page. Its setters maintain the one invariant that matters:
// whenever the search term or status filter changes, the current page snaps
// back to 1, so a stale page number is never applied to a new result set.
type ListState struct {
	searchTerm   string
	statusFilter string
	currentPage  int
	itemsPerPage int
}

// NewListState starts at page 1 with no search and the "all" filter.
// itemsPerPage must be positive; zero or less falls back to the default.
func NewListState(itemsPerPage int) ListState {
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultPageSize
	}
	return ListState{
		statusFilter: models.StatusFilterAll,
		currentPage:  1,
		itemsPerPage: itemsPerPage,
	}
}

// SetSearchTerm updates the search term and resets to page 1 if it changed.
func (ls *ListState) SetSearchTerm(term string) {
	if term == ls.searchTerm {
		return
	}
	ls.searchTerm = term
	ls.currentPage = 1
}

// SetStatusFilter updates the status filter and resets to page 1 if it
// changed. Unknown values fall back to "all".
func (ls *ListState) SetStatusFilter(filter string) {
	if !models.ValidStatusFilter(filter) {
		filter = models.StatusFilterAll
	}
	if filter == ls.statusFilter {
		return
	}
	ls.statusFilter = filter
	ls.currentPage = 1
}

// SetPage moves to the given page, flooring at 1. Pages past the end are
// allowed here; the engine returns an empty page for them and ClampPage exists
// for callers that must land on a valid page after a delete.
func (ls *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	ls.currentPage = page
}

// ClampPage pulls the current page back to the last valid page. With an empty
// result set the page stays at 1.
func (ls *ListState) ClampPage(totalPages int) {
	if totalPages < 1 {
		ls.currentPage = 1
		return
	}
	if ls.currentPage > totalPages {
		ls.currentPage = totalPages
	}
}

// Reset returns to page 1 without touching search or filter. Used after
// creates and deletes, which change result-set membership.
func (ls *ListState) Reset() {
	ls.currentPage = 1
}

// SearchTerm returns the current search term.
func (ls ListState) SearchTerm() string { return ls.searchTerm }

// StatusFilter returns the current status filter.
func (ls ListState) StatusFilter() string { return ls.statusFilter }

// CurrentPage returns the current 1-based page.
func (ls ListState) CurrentPage() int { return ls.currentPage }

// ItemsPerPage returns the fixed page size.
func (ls ListState) ItemsPerPage() int { return ls.itemsPerPage }

// Query materializes the state as a ListQuery for the engine.
func (ls ListState) Query() ListQuery {
	return ListQuery{
		Search:   ls.searchTerm,
		Status:   ls.statusFilter,
		Page:     ls.currentPage,
		PageSize: ls.itemsPerPage,
	}
}
