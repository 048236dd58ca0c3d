package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/config"
	"github.com/FrazKhan1/res-pos-admin/models"
)

// Persister is the remote round-trip every mutation workflow runs before the
// in-memory store is touched. Production uses the GORM-backed implementation;
// tests and mock mode use MockPersister. Swapping one for the other changes
// nothing for callers.
type Persister interface {
	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	UpdateRestaurant(ctx context.Context, id uuid.UUID, columns map[string]any) error
	DeleteRestaurant(ctx context.Context, id uuid.UUID) error

	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, id uuid.UUID, columns map[string]any) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	// Boot-time hydration, newest first to match the store's prepend order.
	LoadRestaurants(ctx context.Context) ([]models.Restaurant, error)
	LoadCategories(ctx context.Context) ([]models.Category, error)
}

// ════════════════════════════════════════════════════════════
// GORM-backed persister
// ════════════════════════════════════════════════════════════

// GormPersister writes through to Postgres.
type GormPersister struct{}

// NewGormPersister creates the production persister.
func NewGormPersister() *GormPersister {
	return &GormPersister{}
}

func (p *GormPersister) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	return config.Gorm.WithContext(ctx).Create(r).Error
}

func (p *GormPersister) UpdateRestaurant(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	return config.Gorm.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(columns).Error
}

func (p *GormPersister) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	return config.Gorm.WithContext(ctx).
		Delete(&models.Restaurant{}, "id = ?", id).Error
}

func (p *GormPersister) CreateCategory(ctx context.Context, c *models.Category) error {
	return config.Gorm.WithContext(ctx).Create(c).Error
}

func (p *GormPersister) UpdateCategory(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	return config.Gorm.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", id).
		Updates(columns).Error
}

func (p *GormPersister) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return config.Gorm.WithContext(ctx).
		Delete(&models.Category{}, "id = ?", id).Error
}

func (p *GormPersister) LoadRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var rs []models.Restaurant
	err := config.Gorm.WithContext(ctx).
		Order("joined_date DESC").
		Find(&rs).Error
	return rs, err
}

func (p *GormPersister) LoadCategories(ctx context.Context) ([]models.Category, error) {
	var cs []models.Category
	err := config.Gorm.WithContext(ctx).
		Order("created_at DESC").
		Find(&cs).Error
	return cs, err
}

// ════════════════════════════════════════════════════════════
// Mock persister
// ════════════════════════════════════════════════════════════

// ErrMockFailure is returned by a MockPersister primed to fail.
var ErrMockFailure = errors.New("persistence call failed")

// MockPersister simulates the remote round-trip with a fixed delay and an
// injectable failure, standing in for the dashboard's timer-based mock.
// Safe for concurrent use.
type MockPersister struct {
	Delay time.Duration

	mu    sync.Mutex
	fail  error
	calls []string
}

// NewMockPersister uses a short default delay.
func NewMockPersister() *MockPersister {
	return &MockPersister{Delay: 50 * time.Millisecond}
}

// FailWith primes every subsequent call to return err. Pass nil to heal.
func (m *MockPersister) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = err
}

// Calls returns the method names invoked so far, in order.
func (m *MockPersister) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockPersister) roundTrip(ctx context.Context, name string) error {
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	return m.fail
}

func (m *MockPersister) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return m.roundTrip(ctx, "CreateRestaurant")
}

func (m *MockPersister) UpdateRestaurant(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	return m.roundTrip(ctx, "UpdateRestaurant")
}

func (m *MockPersister) DeleteRestaurant(ctx context.Context, id uuid.UUID) error {
	return m.roundTrip(ctx, "DeleteRestaurant")
}

func (m *MockPersister) CreateCategory(ctx context.Context, c *models.Category) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return m.roundTrip(ctx, "CreateCategory")
}

func (m *MockPersister) UpdateCategory(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	return m.roundTrip(ctx, "UpdateCategory")
}

func (m *MockPersister) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.roundTrip(ctx, "DeleteCategory")
}

func (m *MockPersister) LoadRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return nil, nil
}

func (m *MockPersister) LoadCategories(ctx context.Context) ([]models.Category, error) {
	return nil, nil
}
