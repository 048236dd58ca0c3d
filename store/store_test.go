package store_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/store"
)

func newRestaurant(name, city, state, status string) models.Restaurant {
	return models.Restaurant{
		Name:      name,
		Cuisine:   "Italian",
		OwnerName: "Owner of " + name,
		Phone:     "+1 555 0100",
		Email:     "owner@example.com",
		Address:   "1 Main St",
		City:      city,
		State:     state,
		Status:    status,
	}
}

func seedStore(t *testing.T, n int) *store.EntityStore {
	t.Helper()
	s := store.New()
	for i := 0; i < n; i++ {
		s.AddRestaurant(newRestaurant(fmt.Sprintf("Restaurant %02d", i), "Austin", "TX", models.StatusActive))
	}
	return s
}

func TestAddRestaurantAssignsIdentityAndDefaults(t *testing.T) {
	s := store.New()
	added := s.AddRestaurant(newRestaurant("Casa Mexico", "El Paso", "TX", ""))

	require.NotEqual(t, uuid.Nil, added.ID)
	require.False(t, added.JoinedDate.IsZero())
	assert.Equal(t, models.StatusActive, added.Status)
	assert.Equal(t, "5.00", added.CommissionRate)
	assert.Equal(t, "0.00", added.Revenue)
}

func TestAddRestaurantPrependsNewest(t *testing.T) {
	s := seedStore(t, 3)
	added := s.AddRestaurant(newRestaurant("Tokyo Sushi Bar", "Seattle", "WA", models.StatusActive))

	all := s.Restaurants()
	require.Len(t, all, 4)
	assert.Equal(t, added.ID, all[0].ID, "new restaurant must sit at index 0")
}

func TestUpdateRestaurantMergesPartial(t *testing.T) {
	s := store.New()
	added := s.AddRestaurant(newRestaurant("Mario's", "Boston", "MA", models.StatusActive))

	city := "Cambridge"
	rate := "7.50"
	s.UpdateRestaurant(added.ID, models.RestaurantUpdate{City: &city, CommissionRate: &rate})

	got, ok := s.GetRestaurant(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Cambridge", got.City)
	assert.Equal(t, "7.50", got.CommissionRate)
	// untouched fields survive the merge
	assert.Equal(t, "Mario's", got.Name)
	assert.Equal(t, "MA", got.State)
}

func TestUpdateMissingIDIsNoOp(t *testing.T) {
	s := seedStore(t, 5)
	before := s.Restaurants()

	name := "Ghost Kitchen"
	s.UpdateRestaurant(uuid.Must(uuid.NewV7()), models.RestaurantUpdate{Name: &name})

	assert.Equal(t, before, s.Restaurants(), "collection must be unchanged after updating a missing id")
}

func TestDeleteRestaurant(t *testing.T) {
	s := seedStore(t, 3)
	victim := s.Restaurants()[1]

	s.DeleteRestaurant(victim.ID)

	all := s.Restaurants()
	require.Len(t, all, 2)
	for _, r := range all {
		assert.NotEqual(t, victim.ID, r.ID)
	}

	// deleting again is a no-op
	s.DeleteRestaurant(victim.ID)
	assert.Len(t, s.Restaurants(), 2)
}

func TestBlockUnblockRestoresActive(t *testing.T) {
	s := store.New()
	added := s.AddRestaurant(newRestaurant("Le Petit Café", "Portland", "OR", models.StatusActive))

	s.BlockRestaurant(added.ID)
	got, ok := s.GetRestaurant(added.ID)
	require.True(t, ok)
	require.Equal(t, models.StatusBlocked, got.Status)

	s.UnblockRestaurant(added.ID)
	got, ok = s.GetRestaurant(added.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusActive, got.Status, "block then unblock must restore active")
}

func TestMutationVisibleToNextRead(t *testing.T) {
	s := store.New()
	added := s.AddRestaurant(newRestaurant("Deli 42", "Queens", "NY", models.StatusActive))
	_, ok := s.GetRestaurant(added.ID)
	require.True(t, ok)

	s.DeleteRestaurant(added.ID)
	_, ok = s.GetRestaurant(added.ID)
	assert.False(t, ok)
}

func TestCategoryLifecycle(t *testing.T) {
	s := store.New()
	added := s.AddCategory(models.Category{Name: "Pizza", Description: "Flat bread", IsActive: true, RestaurantCount: 99})

	require.NotEqual(t, uuid.Nil, added.ID)
	require.False(t, added.CreatedAt.IsZero())
	assert.Equal(t, 0, added.RestaurantCount, "restaurantCount always starts at 0")

	second := s.AddCategory(models.Category{Name: "Sushi", IsActive: true})
	all := s.Categories()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	inactive := false
	name := "Neapolitan Pizza"
	s.UpdateCategory(added.ID, models.CategoryUpdate{Name: &name, IsActive: &inactive})
	got, ok := s.GetCategory(added.ID)
	require.True(t, ok)
	assert.Equal(t, "Neapolitan Pizza", got.Name)
	assert.False(t, got.IsActive)
	assert.Equal(t, 0, got.RestaurantCount)

	s.DeleteCategory(second.ID)
	assert.Len(t, s.Categories(), 1)

	// missing id: silent no-op
	s.UpdateCategory(uuid.Must(uuid.NewV7()), models.CategoryUpdate{Name: &name})
	s.DeleteCategory(uuid.Must(uuid.NewV7()))
	assert.Len(t, s.Categories(), 1)
}

func TestRestaurantStats(t *testing.T) {
	s := store.New()
	a := s.AddRestaurant(newRestaurant("A", "Austin", "TX", models.StatusActive))
	s.AddRestaurant(newRestaurant("B", "Austin", "TX", models.StatusInactive))
	s.AddRestaurant(newRestaurant("C", "Austin", "TX", models.StatusBlocked))

	rev := "1250.75"
	s.UpdateRestaurant(a.ID, models.RestaurantUpdate{Revenue: &rev})

	stats := s.RestaurantStats()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Active)
	assert.Equal(t, 1, stats.Inactive)
	assert.Equal(t, 1, stats.Blocked)
	assert.Equal(t, "1250.75", stats.TotalRevenue)
}

func TestTopRestaurantsByRevenue(t *testing.T) {
	s := store.New()
	low := s.AddRestaurant(newRestaurant("Low", "Austin", "TX", models.StatusActive))
	high := s.AddRestaurant(newRestaurant("High", "Austin", "TX", models.StatusActive))
	mid := s.AddRestaurant(newRestaurant("Mid", "Austin", "TX", models.StatusActive))

	for id, rev := range map[uuid.UUID]string{low.ID: "10.00", high.ID: "5000.00", mid.ID: "250.50"} {
		r := rev
		s.UpdateRestaurant(id, models.RestaurantUpdate{Revenue: &r})
	}

	top := s.TopRestaurantsByRevenue(2)
	require.Len(t, top, 2)
	assert.Equal(t, "High", top[0].Name)
	assert.Equal(t, "Mid", top[1].Name)
}
