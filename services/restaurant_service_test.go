package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrazKhan1/res-pos-admin/models"
	"github.com/FrazKhan1/res-pos-admin/services"
	"github.com/FrazKhan1/res-pos-admin/store"
)

func newRestaurantFixture(t *testing.T) (*services.RestaurantService, *store.EntityStore, *services.MockPersister) {
	t.Helper()
	st := store.New()
	mock := services.NewMockPersister()
	mock.Delay = 0
	return services.NewRestaurantService(st, mock), st, mock
}

func validCreateRequest() models.CreateRestaurantRequest {
	return models.CreateRestaurantRequest{
		Name:      "Tokyo Sushi Bar",
		Cuisine:   "Japanese",
		OwnerName: "Kenji Watanabe",
		Phone:     "+1 415-555-0101",
		Email:     "kenji@tokyosushi.com",
		Address:   "88 Geary St",
		City:      "San Francisco",
		State:     "CA",
	}
}

func TestRestaurantServiceCreateCommitsAfterPersist(t *testing.T) {
	svc, st, mock := newRestaurantFixture(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.StatusActive, created.Status)
	assert.Equal(t, models.DefaultCommissionRate, created.CommissionRate)
	assert.Equal(t, models.DefaultRevenue, created.Revenue)
	assert.Equal(t, []string{"CreateRestaurant"}, mock.Calls())

	all := st.Restaurants()
	require.Len(t, all, 1)
	assert.Equal(t, created.ID, all[0].ID)
}

func TestRestaurantServiceCreateValidationSkipsPersister(t *testing.T) {
	svc, st, mock := newRestaurantFixture(t)

	req := validCreateRequest()
	req.CommissionRate = "150.00"
	req.Revenue = "-3.00"
	req.Status = "paused"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	var verr *services.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "commissionRate")
	assert.Contains(t, verr.Fields, "revenue")
	assert.Contains(t, verr.Fields, "status")

	assert.Empty(t, mock.Calls(), "failed validation must not reach persistence")
	assert.Empty(t, st.Restaurants())
}

func TestRestaurantServiceCreatePersistFailureLeavesStoreUntouched(t *testing.T) {
	svc, st, mock := newRestaurantFixture(t)
	mock.FailWith(services.ErrMockFailure)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.ErrorIs(t, err, services.ErrMockFailure)
	assert.Empty(t, st.Restaurants())
}

func TestRestaurantServiceUpdateMergesFields(t *testing.T) {
	svc, st, _ := newRestaurantFixture(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	name := "Tokyo Sushi & Grill"
	rate := "7.50"
	updated, err := svc.Update(context.Background(), created.ID, models.UpdateRestaurantRequest{
		Name:           &name,
		CommissionRate: &rate,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tokyo Sushi & Grill", updated.Name)
	assert.Equal(t, "7.50", updated.CommissionRate)
	// untouched fields survive the merge
	assert.Equal(t, created.City, updated.City)
	assert.Equal(t, created.JoinedDate, updated.JoinedDate)

	stored, ok := st.GetRestaurant(created.ID)
	require.True(t, ok)
	assert.Equal(t, updated, stored)
}

func TestRestaurantServiceUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, mock := newRestaurantFixture(t)

	name := "Ghost Kitchen"
	_, err := svc.Update(context.Background(), uuid.Must(uuid.NewV7()), models.UpdateRestaurantRequest{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Empty(t, mock.Calls())
}

func TestRestaurantServiceUpdatePersistFailureLeavesStoreUntouched(t *testing.T) {
	svc, st, mock := newRestaurantFixture(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	mock.FailWith(errors.New("connection reset"))
	name := "Renamed"
	_, err = svc.Update(context.Background(), created.ID, models.UpdateRestaurantRequest{Name: &name})
	require.Error(t, err)

	stored, ok := st.GetRestaurant(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Name, stored.Name)
}

func TestRestaurantServiceDelete(t *testing.T) {
	svc, st, _ := newRestaurantFixture(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, st.Restaurants())

	// second delete hits the not-found path
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), services.ErrNotFound)
}

func TestRestaurantServiceBlockUnblockRoundTrip(t *testing.T) {
	svc, _, _ := newRestaurantFixture(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	blocked, err := svc.Block(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBlocked, blocked.Status)

	restored, err := svc.Unblock(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, restored.Status)
}

func TestRestaurantServiceSetImageURL(t *testing.T) {
	svc, _, _ := newRestaurantFixture(t)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.SetImageURL(context.Background(), created.ID, "https://cdn.example.com/r.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/r.jpg", updated.ImageURL)
}
