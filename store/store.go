package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// EntityStore owns the in-memory restaurant and category collections the
// dashboard reads from. Collections are kept newest-first: creates prepend, so
// no separate sort step is needed. Mutations take the write lock and are
// visible to the very next read.
//
// The store itself never talks to the network or the database; the mutation
// workflow in services commits here only after the persistence round-trip
// reports success.
type EntityStore struct {
	mu          sync.RWMutex
	restaurants []models.Restaurant
	categories  []models.Category
}

// New returns an empty store.
func New() *EntityStore {
	return &EntityStore{}
}

// ════════════════════════════════════════════════════════════
// Hydration (boot-time load from persistence)
// ════════════════════════════════════════════════════════════

// HydrateRestaurants replaces the restaurant collection wholesale.
// Callers must pass the list newest-first.
func (s *EntityStore) HydrateRestaurants(rs []models.Restaurant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = append([]models.Restaurant(nil), rs...)
}

// HydrateCategories replaces the category collection wholesale.
func (s *EntityStore) HydrateCategories(cs []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), cs...)
}

// ════════════════════════════════════════════════════════════
// Restaurant mutations
// ════════════════════════════════════════════════════════════

// AddRestaurant assigns a fresh id and joined date if unset, fills defaults,
// and prepends the restaurant so it shows up on page 1. Returns the stored copy.
func (s *EntityStore) AddRestaurant(r models.Restaurant) models.Restaurant {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	if r.JoinedDate.IsZero() {
		r.JoinedDate = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = models.StatusActive
	}
	if r.CommissionRate == "" {
		r.CommissionRate = models.DefaultCommissionRate
	}
	if r.Revenue == "" {
		r.Revenue = models.DefaultRevenue
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants = append([]models.Restaurant{r}, s.restaurants...)
	return r
}

// UpdateRestaurant merges the non-nil fields of upd onto the matching entity.
// A missing id is a silent no-op; existence checks live in the mutation
// workflow, not here.
func (s *EntityStore) UpdateRestaurant(id uuid.UUID, upd models.RestaurantUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID != id {
			continue
		}
		applyRestaurantUpdate(&s.restaurants[i], upd)
		return
	}
}

func applyRestaurantUpdate(r *models.Restaurant, upd models.RestaurantUpdate) {
	if upd.Name != nil {
		r.Name = *upd.Name
	}
	if upd.Cuisine != nil {
		r.Cuisine = *upd.Cuisine
	}
	if upd.OwnerName != nil {
		r.OwnerName = *upd.OwnerName
	}
	if upd.Phone != nil {
		r.Phone = *upd.Phone
	}
	if upd.Email != nil {
		r.Email = *upd.Email
	}
	if upd.Address != nil {
		r.Address = *upd.Address
	}
	if upd.City != nil {
		r.City = *upd.City
	}
	if upd.State != nil {
		r.State = *upd.State
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.CommissionRate != nil {
		r.CommissionRate = *upd.CommissionRate
	}
	if upd.Revenue != nil {
		r.Revenue = *upd.Revenue
	}
	if upd.ImageURL != nil {
		r.ImageURL = *upd.ImageURL
	}
}

// DeleteRestaurant removes the matching entity. No-op if not found.
func (s *EntityStore) DeleteRestaurant(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			s.restaurants = append(s.restaurants[:i], s.restaurants[i+1:]...)
			return
		}
	}
}

// BlockRestaurant sets status to blocked via the update path.
func (s *EntityStore) BlockRestaurant(id uuid.UUID) {
	status := models.StatusBlocked
	s.UpdateRestaurant(id, models.RestaurantUpdate{Status: &status})
}

// UnblockRestaurant sets status back to active via the update path.
func (s *EntityStore) UnblockRestaurant(id uuid.UUID) {
	status := models.StatusActive
	s.UpdateRestaurant(id, models.RestaurantUpdate{Status: &status})
}

// GetRestaurant returns a copy of the matching restaurant.
func (s *EntityStore) GetRestaurant(id uuid.UUID) (models.Restaurant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.restaurants {
		if s.restaurants[i].ID == id {
			return s.restaurants[i], true
		}
	}
	return models.Restaurant{}, false
}

// Restaurants returns a snapshot of the unfiltered collection, newest first.
func (s *EntityStore) Restaurants() []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Restaurant(nil), s.restaurants...)
}

// ════════════════════════════════════════════════════════════
// Category mutations
// ════════════════════════════════════════════════════════════

// AddCategory assigns id and createdAt if unset, forces restaurantCount to 0,
// and prepends. Returns the stored copy.
func (s *EntityStore) AddCategory(c models.Category) models.Category {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.RestaurantCount = 0

	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category{c}, s.categories...)
	return c
}

// UpdateCategory merges the non-nil fields of upd onto the matching category.
// Silent no-op on a missing id. restaurantCount is not touched by edits.
func (s *EntityStore) UpdateCategory(id uuid.UUID, upd models.CategoryUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.categories[i].Name = *upd.Name
		}
		if upd.Description != nil {
			s.categories[i].Description = *upd.Description
		}
		if upd.IsActive != nil {
			s.categories[i].IsActive = *upd.IsActive
		}
		return
	}
}

// DeleteCategory removes the matching category. No-op if not found.
func (s *EntityStore) DeleteCategory(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return
		}
	}
}

// GetCategory returns a copy of the matching category.
func (s *EntityStore) GetCategory(id uuid.UUID) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			return s.categories[i], true
		}
	}
	return models.Category{}, false
}

// Categories returns a snapshot of the unfiltered collection, newest first.
func (s *EntityStore) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// ════════════════════════════════════════════════════════════
// Stats
// ════════════════════════════════════════════════════════════

// RestaurantStats counts the collection by status and sums revenue in cents.
func (s *EntityStore) RestaurantStats() models.RestaurantStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.RestaurantStats{Total: len(s.restaurants)}
	var cents int64
	for i := range s.restaurants {
		switch s.restaurants[i].Status {
		case models.StatusActive:
			stats.Active++
		case models.StatusInactive:
			stats.Inactive++
		case models.StatusBlocked:
			stats.Blocked++
		}
		cents += parseCents(s.restaurants[i].Revenue)
	}
	stats.TotalRevenue = formatCents(cents)
	return stats
}

// CategoryStats counts categories by active flag.
func (s *EntityStore) CategoryStats() models.CategoryStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.CategoryStats{Total: len(s.categories)}
	for i := range s.categories {
		if s.categories[i].IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	if stats.Total > 0 {
		stats.PercentageActive = float64(stats.Active) / float64(stats.Total) * 100
	}
	return stats
}

// TopRestaurantsByRevenue returns up to n restaurants ordered by revenue,
// highest first. Ties keep collection order.
func (s *EntityStore) TopRestaurantsByRevenue(n int) []models.Restaurant {
	top := s.Restaurants()
	// insertion sort: the collection is bounded, stability matters more than speed
	for i := 1; i < len(top); i++ {
		for j := i; j > 0 && parseCents(top[j].Revenue) > parseCents(top[j-1].Revenue); j-- {
			top[j], top[j-1] = top[j-1], top[j]
		}
	}
	if n < len(top) {
		top = top[:n]
	}
	return top
}

// parseCents reads a decimal-formatted string ("1234.56") as integer cents.
// Revenue and commission travel as strings to avoid float drift, so sums are
// done in cents too. Malformed values count as zero.
func parseCents(dec string) int64 {
	whole, frac, _ := strings.Cut(strings.TrimSpace(dec), ".")
	frac = (frac + "00")[:2]
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0
	}
	if strings.HasPrefix(whole, "-") {
		return w*100 - f
	}
	return w*100 + f
}

// formatCents renders integer cents back to a decimal string with 2 places.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
