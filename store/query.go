package store

import (
	"math"
	"strings"

	"github.com/FrazKhan1/res-pos-admin/models"
)

// DefaultPageSize matches the dashboard's fixed items-per-page.
const DefaultPageSize = 10

// ListQuery is one query over a collection: case-insensitive substring search,
// status filter, 1-based page. PageSize must be positive; that is guarded by
// configuration (NewListState / handler param parsing), not by the engine.
type ListQuery struct {
	Search   string
	Status   string // "all", "active", "inactive", "blocked"
	Page     int
	PageSize int
}

// ════════════════════════════════════════════════════════════
// Restaurants
// ════════════════════════════════════════════════════════════

// filteredRestaurants is the single filter predicate both the page-slicing and
// page-counting paths run through, so the two can never drift apart.
// Locked by the caller.
func (s *EntityStore) filteredRestaurants(q ListQuery) []models.Restaurant {
	out := s.restaurants
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		matched := make([]models.Restaurant, 0, len(out))
		for i := range out {
			if strings.Contains(strings.ToLower(out[i].Name), term) ||
				strings.Contains(strings.ToLower(out[i].City), term) ||
				strings.Contains(strings.ToLower(out[i].State), term) {
				matched = append(matched, out[i])
			}
		}
		out = matched
	}
	if q.Status != "" && q.Status != models.StatusFilterAll {
		matched := make([]models.Restaurant, 0, len(out))
		for i := range out {
			if out[i].Status == q.Status {
				matched = append(matched, out[i])
			}
		}
		out = matched
	}
	return out
}

// FilteredRestaurantPage returns the requested page of the filtered collection
// in insertion order (newest first). A page past the end returns an empty
// slice; clamping is the caller's concern.
func (s *EntityStore) FilteredRestaurantPage(q ListQuery) []models.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := s.filteredRestaurants(q)
	start, end := pageBounds(len(filtered), q.Page, q.PageSize)
	return append([]models.Restaurant(nil), filtered[start:end]...)
}

// RestaurantTotalPages returns ceil(filteredCount / pageSize), 0 when the
// filtered result is empty.
func (s *EntityStore) RestaurantTotalPages(q ListQuery) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalPages(len(s.filteredRestaurants(q)), q.PageSize)
}

// ListRestaurants runs the filter once and returns the page together with its
// pagination meta, for handlers that need both.
func (s *EntityStore) ListRestaurants(q ListQuery) ([]models.Restaurant, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := s.filteredRestaurants(q)
	start, end := pageBounds(len(filtered), q.Page, q.PageSize)
	page := append([]models.Restaurant(nil), filtered[start:end]...)
	return page, models.Pagination{
		Page:       q.Page,
		Limit:      q.PageSize,
		Total:      len(filtered),
		TotalPages: totalPages(len(filtered), q.PageSize),
	}
}

// ════════════════════════════════════════════════════════════
// Categories
// ════════════════════════════════════════════════════════════

// filteredCategories matches on name/description substring; the status filter
// maps onto the isActive flag. Locked by the caller.
func (s *EntityStore) filteredCategories(q ListQuery) []models.Category {
	out := s.categories
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		matched := make([]models.Category, 0, len(out))
		for i := range out {
			if strings.Contains(strings.ToLower(out[i].Name), term) ||
				strings.Contains(strings.ToLower(out[i].Description), term) {
				matched = append(matched, out[i])
			}
		}
		out = matched
	}
	if q.Status == models.StatusActive || q.Status == models.StatusInactive {
		wantActive := q.Status == models.StatusActive
		matched := make([]models.Category, 0, len(out))
		for i := range out {
			if out[i].IsActive == wantActive {
				matched = append(matched, out[i])
			}
		}
		out = matched
	}
	return out
}

// FilteredCategoryPage returns the requested page of the filtered categories.
func (s *EntityStore) FilteredCategoryPage(q ListQuery) []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := s.filteredCategories(q)
	start, end := pageBounds(len(filtered), q.Page, q.PageSize)
	return append([]models.Category(nil), filtered[start:end]...)
}

// CategoryTotalPages returns ceil(filteredCount / pageSize) for categories.
func (s *EntityStore) CategoryTotalPages(q ListQuery) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return totalPages(len(s.filteredCategories(q)), q.PageSize)
}

// ListCategories runs the filter once and returns page plus meta.
func (s *EntityStore) ListCategories(q ListQuery) ([]models.Category, models.Pagination) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	filtered := s.filteredCategories(q)
	start, end := pageBounds(len(filtered), q.Page, q.PageSize)
	page := append([]models.Category(nil), filtered[start:end]...)
	return page, models.Pagination{
		Page:       q.Page,
		Limit:      q.PageSize,
		Total:      len(filtered),
		TotalPages: totalPages(len(filtered), q.PageSize),
	}
}

// ════════════════════════════════════════════════════════════
// Paging helpers
// ════════════════════════════════════════════════════════════

// pageBounds slices [(page-1)*size, page*size) clipped to [0, n]. A page past
// the end collapses to an empty range — no wraparound, no clamping.
func pageBounds(n, page, size int) (int, int) {
	start := (page - 1) * size
	end := start + size
	if start > n {
		start = n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}

func totalPages(count, size int) int {
	return int(math.Ceil(float64(count) / float64(size)))
}
