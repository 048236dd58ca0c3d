package store_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/store"
)

func query(search, status string, page int) store.ListQuery {
	return store.ListQuery{Search: search, Status: status, Page: page, PageSize: 10}
}

func TestFifteenRestaurantsPaginateAsTwoPages(t *testing.T) {
	s := seedStore(t, 15)

	q := query("", models.StatusFilterAll, 1)
	assert.Equal(t, 2, s.RestaurantTotalPages(q))
	assert.Len(t, s.FilteredRestaurantPage(q), 10)

	q.Page = 2
	assert.Len(t, s.FilteredRestaurantPage(q), 5)
}

func TestPageBeyondEndIsEmpty(t *testing.T) {
	s := seedStore(t, 15)

	page := s.FilteredRestaurantPage(query("", models.StatusFilterAll, 3))
	assert.Empty(t, page, "no wraparound, no clamping inside the engine")
}

func TestEmptyCollectionHasZeroPages(t *testing.T) {
	s := store.New()
	assert.Equal(t, 0, s.RestaurantTotalPages(query("", models.StatusFilterAll, 1)))
	assert.Empty(t, s.FilteredRestaurantPage(query("", models.StatusFilterAll, 1)))
}

func TestSearchMatchesNameCityStateCaseFolded(t *testing.T) {
	s := store.New()
	s.AddRestaurant(newRestaurant("Tokyo Sushi Bar", "Seattle", "WA", models.StatusActive))
	s.AddRestaurant(newRestaurant("Mario's Bistro", "Tokyo Heights", "CA", models.StatusActive))
	s.AddRestaurant(newRestaurant("Casa Mexico", "El Paso", "TX", models.StatusActive))
	s.AddRestaurant(newRestaurant("BBQ Pit", "Dallas", "texas of the north", models.StatusActive))

	assert.Len(t, s.FilteredRestaurantPage(query("TOKYO", models.StatusFilterAll, 1)), 2, "name and city both match, case-insensitively")
	assert.Len(t, s.FilteredRestaurantPage(query("Texas", models.StatusFilterAll, 1)), 1, "state matches as substring")
	assert.Empty(t, s.FilteredRestaurantPage(query("zanzibar", models.StatusFilterAll, 1)))
}

func TestStatusFilter(t *testing.T) {
	s := store.New()
	s.AddRestaurant(newRestaurant("A", "Austin", "TX", models.StatusActive))
	s.AddRestaurant(newRestaurant("B", "Austin", "TX", models.StatusBlocked))
	s.AddRestaurant(newRestaurant("C", "Austin", "TX", models.StatusInactive))
	s.AddRestaurant(newRestaurant("D", "Austin", "TX", models.StatusBlocked))

	assert.Len(t, s.FilteredRestaurantPage(query("", models.StatusBlocked, 1)), 2)
	assert.Len(t, s.FilteredRestaurantPage(query("", models.StatusActive, 1)), 1)
	assert.Len(t, s.FilteredRestaurantPage(query("", models.StatusFilterAll, 1)), 4)
}

func TestSearchAndStatusCompose(t *testing.T) {
	s := store.New()
	s.AddRestaurant(newRestaurant("Tokyo Sushi Bar", "Seattle", "WA", models.StatusActive))
	s.AddRestaurant(newRestaurant("Tokyo Grill", "Seattle", "WA", models.StatusBlocked))

	page := s.FilteredRestaurantPage(query("tokyo", models.StatusBlocked, 1))
	require.Len(t, page, 1)
	assert.Equal(t, "Tokyo Grill", page[0].Name)
}

// Filter consistency: summing the lengths of every page must equal the total
// number of matching entities, for any search/filter combination.
func TestFilterConsistencyAcrossPages(t *testing.T) {
	s := store.New()
	statuses := []string{models.StatusActive, models.StatusInactive, models.StatusBlocked}
	cities := []string{"Austin", "Boston", "Chicago"}
	for i := 0; i < 57; i++ {
		s.AddRestaurant(newRestaurant(
			fmt.Sprintf("Place %03d", i),
			cities[i%len(cities)],
			"TX",
			statuses[i%len(statuses)],
		))
	}

	searches := []string{"", "place", "austin", "Place 01"}
	filters := []string{models.StatusFilterAll, models.StatusActive, models.StatusInactive, models.StatusBlocked}

	for _, search := range searches {
		for _, filter := range filters {
			q := query(search, filter, 1)
			total := s.RestaurantTotalPages(q)

			sum := 0
			for page := 1; page <= total; page++ {
				q.Page = page
				sum += len(s.FilteredRestaurantPage(q))
			}

			_, meta := s.ListRestaurants(query(search, filter, 1))
			assert.Equalf(t, meta.Total, sum,
				"search=%q filter=%q: page lengths must sum to the filtered count", search, filter)
		}
	}
}

func TestListRestaurantsMetaMatchesEngine(t *testing.T) {
	s := seedStore(t, 15)

	page, meta := s.ListRestaurants(query("", models.StatusFilterAll, 2))
	assert.Len(t, page, 5)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 15, meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestPageOrderIsCollectionOrder(t *testing.T) {
	s := store.New()
	for i := 0; i < 12; i++ {
		s.AddRestaurant(newRestaurant(fmt.Sprintf("R%02d", i), "Austin", "TX", models.StatusActive))
	}

	first := s.FilteredRestaurantPage(query("", models.StatusFilterAll, 1))
	second := s.FilteredRestaurantPage(query("", models.StatusFilterAll, 2))
	require.Len(t, first, 10)
	require.Len(t, second, 2)
	// prepend-on-create means newest first: R11 leads page 1, R01 leads page 2
	assert.Equal(t, "R11", first[0].Name)
	assert.Equal(t, "R01", second[0].Name)
	assert.Equal(t, "R00", second[1].Name)
}

func TestCategoryQueries(t *testing.T) {
	s := store.New()
	s.AddCategory(models.Category{Name: "Pizza", Description: "Wood-fired", IsActive: true})
	s.AddCategory(models.Category{Name: "Sushi", Description: "Raw fish", IsActive: false})
	s.AddCategory(models.Category{Name: "Desserts", Description: "Sweet pizza optional", IsActive: true})

	assert.Len(t, s.FilteredCategoryPage(query("pizza", models.StatusFilterAll, 1)), 2, "description matches too")
	assert.Len(t, s.FilteredCategoryPage(query("", models.StatusActive, 1)), 2)
	assert.Len(t, s.FilteredCategoryPage(query("", models.StatusInactive, 1)), 1)
	assert.Equal(t, 1, s.CategoryTotalPages(query("", models.StatusFilterAll, 1)))

	page, meta := s.ListCategories(query("sushi", models.StatusFilterAll, 1))
	require.Len(t, page, 1)
	assert.Equal(t, "Sushi", page[0].Name)
	assert.Equal(t, 1, meta.Total)
}

func TestDeleteLastEntityOfLastPageLeavesStalePageEmpty(t *testing.T) {
	s := seedStore(t, 11)

	q := query("", models.StatusFilterAll, 2)
	require.Len(t, s.FilteredRestaurantPage(q), 1)

	victim := s.Restaurants()[10] // oldest, alone on page 2
	s.DeleteRestaurant(victim.ID)

	// the engine reports the stale page as empty; callers clamp via ListState
	assert.Empty(t, s.FilteredRestaurantPage(q))
	assert.Equal(t, 1, s.RestaurantTotalPages(q))

	ls := store.NewListState(10)
	ls.SetPage(2)
	ls.ClampPage(s.RestaurantTotalPages(q))
	assert.Equal(t, 1, ls.CurrentPage())
}
