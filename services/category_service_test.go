package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/store"
)

func newCategoryFixture(t *testing.T) (*services.CategoryService, *store.EntityStore, *services.MockPersister) {
	t.Helper()
	st := store.New()
	mock := services.NewMockPersister()
	mock.Delay = 0
	return services.NewCategoryService(st, mock), st, mock
}

func TestCategoryServiceCreateDefaultsToActive(t *testing.T) {
	svc, st, mock := newCategoryFixture(t)

	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{
		Name:        "Italian",
		Description: "Pasta and pizza",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.IsActive)
	assert.Zero(t, created.RestaurantCount)
	assert.Equal(t, []string{"CreateCategory"}, mock.Calls())
	assert.Len(t, st.Categories(), 1)
}

func TestCategoryServiceCreateHonorsExplicitInactive(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	inactive := false
	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{
		Name:     "French",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.False(t, created.IsActive)
}

func TestCategoryServiceCreatePersistFailureLeavesStoreUntouched(t *testing.T) {
	svc, st, mock := newCategoryFixture(t)
	mock.FailWith(services.ErrMockFailure)

	_, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Thai"})
	require.ErrorIs(t, err, services.ErrMockFailure)
	assert.Empty(t, st.Categories())
}

func TestCategoryServiceUpdateMergesFields(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{
		Name:        "Mexican",
		Description: "Tacos",
	})
	require.NoError(t, err)

	desc := "Tacos, burritos and more"
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateCategoryRequest{
		Description: &desc,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mexican", updated.Name)
	assert.Equal(t, desc, updated.Description)
}

func TestCategoryServiceUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, mock := newCategoryFixture(t)

	name := "Nope"
	_, err := svc.Update(context.Background(), uuid.Must(uuid.NewV7()), models.UpdateCategoryRequest{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, mock.Calls())
}

func TestCategoryServiceDelete(t *testing.T) {
	svc, st, _ := newCategoryFixture(t)

	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Greek"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, st.Categories())
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), services.ErrNotFound)
}

func TestCategoryServiceToggleActiveFlips(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)

	created, err := svc.Create(context.Background(), models.CreateCategoryRequest{Name: "Korean"})
	require.NoError(t, err)
	require.True(t, created.IsActive)

	toggled, err := svc.ToggleActive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggledBack, err := svc.ToggleActive(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, toggledBack.IsActive)
}

func TestCategoryServiceToggleActiveUnknownID(t *testing.T) {
	svc, _, _ := newCategoryFixture(t)
	_, err := svc.ToggleActive(context.Background(), uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, services.ErrNotFound)
}
