package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/store"
)

// ErrNotFound is returned when a mutation targets an id the store no longer
// holds (e.g. deleted from another tab). The store itself stays a silent
// no-op; this layer is where existence gets checked.
var ErrNotFound = errors.New("entity not found")

// ValidationError carries field-level messages for inline display. It aborts
// the workflow before any persistence call, so it never leaves partial state.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// RestaurantService is the mutation workflow for restaurants:
// validate → persistence round-trip → commit to the entity store.
// The store is only mutated after the round-trip reports success, so a failed
// call never corrupts it.
type RestaurantService struct {
	store     *store.EntityStore
	persister Persister
}

// NewRestaurantService wires the workflow to a store and a persister.
func NewRestaurantService(st *store.EntityStore, p Persister) *RestaurantService {
	return &RestaurantService{store: st, persister: p}
}

// Store exposes the underlying entity store for read paths.
func (s *RestaurantService) Store() *store.EntityStore {
	return s.store
}

// Hydrate loads the full collection from persistence into the store.
func (s *RestaurantService) Hydrate(ctx context.Context) error {
	rs, err := s.persister.LoadRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("failed to load restaurants: %w", err)
	}
	s.store.HydrateRestaurants(rs)
	return nil
}

// Create validates, persists, then prepends the new restaurant to the store.
func (s *RestaurantService) Create(ctx context.Context, req models.CreateRestaurantRequest) (models.Restaurant, error) {
	fields := map[string]string{}
	validateDecimalField(fields, "commissionRate", req.CommissionRate, 0, 100)
	validateDecimalField(fields, "revenue", req.Revenue, 0, -1)
	if req.Status != "" && !models.ValidStatus(req.Status) {
		fields["status"] = "Must be one of: active inactive blocked"
	}
	if len(fields) > 0 {
		return models.Restaurant{}, &ValidationError{Fields: fields}
	}

	r := models.Restaurant{
		Name:           req.Name,
		Cuisine:        req.Cuisine,
		OwnerName:      req.OwnerName,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		Status:         req.Status,
		CommissionRate: req.CommissionRate,
		Revenue:        req.Revenue,
		ImageURL:       req.ImageURL,
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

	if err := s.persister.CreateRestaurant(ctx, &r); err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to persist restaurant: %w", err)
	}

	return s.store.AddRestaurant(r), nil
}

// Update merges a partial update after checking the id still exists.
func (s *RestaurantService) Update(ctx context.Context, id uuid.UUID, req models.UpdateRestaurantRequest) (models.Restaurant, error) {
	if _, ok := s.store.GetRestaurant(id); !ok {
		return models.Restaurant{}, ErrNotFound
	}

	fields := map[string]string{}
	if req.CommissionRate != nil {
		validateDecimalField(fields, "commissionRate", *req.CommissionRate, 0, 100)
	}
	if req.Revenue != nil {
		validateDecimalField(fields, "revenue", *req.Revenue, 0, -1)
	}
	if len(fields) > 0 {
		return models.Restaurant{}, &ValidationError{Fields: fields}
	}

	if err := s.persister.UpdateRestaurant(ctx, id, restaurantColumns(req)); err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to persist restaurant update: %w", err)
	}

	s.store.UpdateRestaurant(id, req.ToUpdate())
	updated, _ := s.store.GetRestaurant(id)
	return updated, nil
}

// Delete removes the restaurant after the persistence call succeeds.
func (s *RestaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.store.GetRestaurant(id); !ok {
		return ErrNotFound
	}
	if err := s.persister.DeleteRestaurant(ctx, id); err != nil {
		return fmt.Errorf("failed to persist restaurant delete: %w", err)
	}
	s.store.DeleteRestaurant(id)
	return nil
}

// Block sets status to blocked through the same workflow as any update.
func (s *RestaurantService) Block(ctx context.Context, id uuid.UUID) (models.Restaurant, error) {
	return s.setStatus(ctx, id, models.StatusBlocked)
}

// Unblock sets status back to active.
func (s *RestaurantService) Unblock(ctx context.Context, id uuid.UUID) (models.Restaurant, error) {
	return s.setStatus(ctx, id, models.StatusActive)
}

func (s *RestaurantService) setStatus(ctx context.Context, id uuid.UUID, status string) (models.Restaurant, error) {
	if _, ok := s.store.GetRestaurant(id); !ok {
		return models.Restaurant{}, ErrNotFound
	}
	if err := s.persister.UpdateRestaurant(ctx, id, map[string]any{"status": status}); err != nil {
		return models.Restaurant{}, fmt.Errorf("failed to persist status change: %w", err)
	}
	if status == models.StatusBlocked {
		s.store.BlockRestaurant(id)
	} else {
		s.store.UnblockRestaurant(id)
	}
	updated, _ := s.store.GetRestaurant(id)
	return updated, nil
}

// SetImageURL routes an uploaded image URL through the update workflow.
func (s *RestaurantService) SetImageURL(ctx context.Context, id uuid.UUID, url string) (models.Restaurant, error) {
	return s.Update(ctx, id, models.UpdateRestaurantRequest{ImageURL: &url})
}

// restaurantColumns maps the non-nil request fields onto DB column updates.
func restaurantColumns(req models.UpdateRestaurantRequest) map[string]any {
	cols := map[string]any{}
	if req.Name != nil {
		cols["name"] = *req.Name
	}
	if req.Cuisine != nil {
		cols["cuisine"] = *req.Cuisine
	}
	if req.OwnerName != nil {
		cols["owner_name"] = *req.OwnerName
	}
	if req.Phone != nil {
		cols["phone"] = *req.Phone
	}
	if req.Email != nil {
		cols["email"] = *req.Email
	}
	if req.Address != nil {
		cols["address"] = *req.Address
	}
	if req.City != nil {
		cols["city"] = *req.City
	}
	if req.State != nil {
		cols["state"] = *req.State
	}
	if req.Status != nil {
		cols["status"] = *req.Status
	}
	if req.CommissionRate != nil {
		cols["commission_rate"] = *req.CommissionRate
	}
	if req.Revenue != nil {
		cols["revenue"] = *req.Revenue
	}
	if req.ImageURL != nil {
		cols["image_url"] = *req.ImageURL
	}
	return cols
}

// validateDecimalField checks a decimal-formatted string against [min, max];
// max < 0 means unbounded above. Empty strings pass (defaults apply later).
func validateDecimalField(fields map[string]string, name, value string, min, max float64) {
	if value == "" {
		return
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fields[name] = "Must be a decimal number"
		return
	}
	if f < min {
		fields[name] = fmt.Sprintf("Must be at least %g", min)
		return
	}
	if max >= 0 && f > max {
		fields[name] = fmt.Sprintf("Must be at most %g", max)
	}
}
