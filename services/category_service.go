package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/store"
)

// CategoryService is the mutation workflow for dish categories, same shape as
// the restaurant workflow: validate → persist → commit.
type CategoryService struct {
	store     *store.EntityStore
	persister Persister
}

// NewCategoryService wires the workflow to a store and a persister.
func NewCategoryService(st *store.EntityStore, p Persister) *CategoryService {
	return &CategoryService{store: st, persister: p}
}

// Store exposes the underlying entity store for read paths.
func (s *CategoryService) Store() *store.EntityStore {
	return s.store
}

// Hydrate loads the full category collection from persistence into the store.
func (s *CategoryService) Hydrate(ctx context.Context) error {
	cs, err := s.persister.LoadCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	s.store.HydrateCategories(cs)
	return nil
}

// Create persists, then prepends the new category. restaurantCount starts at 0.
func (s *CategoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	c := models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	if err := s.persister.CreateCategory(ctx, &c); err != nil {
		return models.Category{}, fmt.Errorf("failed to persist category: %w", err)
	}
	return s.store.AddCategory(c), nil
}

// Update merges a partial update after checking existence.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req models.UpdateCategoryRequest) (models.Category, error) {
	if _, ok := s.store.GetCategory(id); !ok {
		return models.Category{}, ErrNotFound
	}

	if err := s.persister.UpdateCategory(ctx, id, categoryColumns(req)); err != nil {
		return models.Category{}, fmt.Errorf("failed to persist category update: %w", err)
	}

	s.store.UpdateCategory(id, req.ToUpdate())
	updated, _ := s.store.GetCategory(id)
	return updated, nil
}

// Delete removes the category after the persistence call succeeds.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.store.GetCategory(id); !ok {
		return ErrNotFound
	}
	if err := s.persister.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to persist category delete: %w", err)
	}
	s.store.DeleteCategory(id)
	return nil
}

// ToggleActive flips the isActive flag through the update workflow.
func (s *CategoryService) ToggleActive(ctx context.Context, id uuid.UUID) (models.Category, error) {
	current, ok := s.store.GetCategory(id)
	if !ok {
		return models.Category{}, ErrNotFound
	}
	next := !current.IsActive
	return s.Update(ctx, id, models.UpdateCategoryRequest{IsActive: &next})
}

func categoryColumns(req models.UpdateCategoryRequest) map[string]any {
	cols := map[string]any{}
	if req.Name != nil {
		cols["name"] = *req.Name
	}
	if req.Description != nil {
		cols["description"] = *req.Description
	}
	if req.IsActive != nil {
		cols["is_active"] = *req.IsActive
	}
	return cols
}
