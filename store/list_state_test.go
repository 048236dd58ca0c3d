package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/store"
)

func TestNewListStateDefaults(t *testing.T) {
	ls := store.NewListState(10)
	assert.Equal(t, "", ls.SearchTerm())
	assert.Equal(t, models.StatusFilterAll, ls.StatusFilter())
	assert.Equal(t, 1, ls.CurrentPage())
	assert.Equal(t, 10, ls.ItemsPerPage())

	// non-positive page size falls back to the configured default
	ls = store.NewListState(0)
	assert.Equal(t, store.DefaultPageSize, ls.ItemsPerPage())
}

func TestSearchChangeResetsPage(t *testing.T) {
	ls := store.NewListState(10)
	ls.SetPage(4)
	ls.SetSearchTerm("tokyo")
	assert.Equal(t, 1, ls.CurrentPage(), "changing the search term must reset to page 1")

	// same term again: page is left alone
	ls.SetPage(3)
	ls.SetSearchTerm("tokyo")
	assert.Equal(t, 3, ls.CurrentPage())
}

func TestStatusFilterChangeResetsPage(t *testing.T) {
	ls := store.NewListState(10)
	ls.SetPage(7)
	ls.SetStatusFilter(models.StatusBlocked)
	assert.Equal(t, 1, ls.CurrentPage())
	assert.Equal(t, models.StatusBlocked, ls.StatusFilter())

	// unchanged filter: no reset
	ls.SetPage(2)
	ls.SetStatusFilter(models.StatusBlocked)
	assert.Equal(t, 2, ls.CurrentPage())
}

func TestUnknownStatusFilterFallsBackToAll(t *testing.T) {
	ls := store.NewListState(10)
	ls.SetStatusFilter("banana")
	assert.Equal(t, models.StatusFilterAll, ls.StatusFilter())
}

func TestSetPageFloorsAtOne(t *testing.T) {
	ls := store.NewListState(10)
	ls.SetPage(0)
	assert.Equal(t, 1, ls.CurrentPage())
	ls.SetPage(-3)
	assert.Equal(t, 1, ls.CurrentPage())
	ls.SetPage(5)
	assert.Equal(t, 5, ls.CurrentPage())
}

func TestClampPage(t *testing.T) {
	ls := store.NewListState(10)
	ls.SetPage(9)
	ls.ClampPage(4)
	assert.Equal(t, 4, ls.CurrentPage())

	ls.ClampPage(0) // empty result set
	assert.Equal(t, 1, ls.CurrentPage())

	ls.SetPage(2)
	ls.ClampPage(5) // already valid
	assert.Equal(t, 2, ls.CurrentPage())
}

func TestQueryMaterialization(t *testing.T) {
	ls := store.NewListState(10)
	ls.SetSearchTerm("sushi")
	ls.SetStatusFilter(models.StatusActive)
	ls.SetPage(2)

	q := ls.Query()
	assert.Equal(t, "sushi", q.Search)
	assert.Equal(t, models.StatusActive, q.Status)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 10, q.PageSize)
}
