package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/models"
)

func validAmenity(amenityID, supervisorID string, general, current int) *models.Amenity {
	return &models.Amenity{
		AmenityID:           amenityID,
		SupervisorID:        supervisorID,
		Name:                "Projector",
		GeneralAvailability: general,
		CurrentAvailability: current,
		BlockDetails:        "Block B store room",
		Description:         "HDMI projector with stand",
	}
}

func newAmenityFixture(t *testing.T) (*AmenityService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	identities := NewIdentityService(store)
	_, err := identities.Register(context.Background(), validIdentity("S1", models.RoleSupervisor))
	require.NoError(t, err)
	return NewAmenityService(store, store, nil), store
}

func TestCreateAmenity(t *testing.T) {
	svc, _ := newAmenityFixture(t)
	ctx := context.Background()

	created, err := svc.CreateAmenity(ctx, validAmenity("A1", "S1", 10, 10))
	require.NoError(t, err)
	assert.Equal(t, 10, created.CurrentAvailability)

	_, err = svc.CreateAmenity(ctx, validAmenity("A2", "ghost", 10, 10))
	assert.ErrorIs(t, err, models.ErrValidation)

	// current above general never enters the catalog
	_, err = svc.CreateAmenity(ctx, validAmenity("A3", "S1", 5, 6))
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestAdjustCurrentAvailability(t *testing.T) {
	svc, _ := newAmenityFixture(t)
	ctx := context.Background()

	_, err := svc.CreateAmenity(ctx, validAmenity("A1", "S1", 10, 10))
	require.NoError(t, err)

	amenity, err := svc.AdjustCurrentAvailability(ctx, "A1", -4)
	require.NoError(t, err)
	assert.Equal(t, 6, amenity.CurrentAvailability)

	// below zero
	_, err = svc.AdjustCurrentAvailability(ctx, "A1", -7)
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)

	// above general
	_, err = svc.AdjustCurrentAvailability(ctx, "A1", 5)
	assert.ErrorIs(t, err, models.ErrCapacityExceeded)

	amenity, err = svc.AdjustCurrentAvailability(ctx, "A1", 4)
	require.NoError(t, err)
	assert.Equal(t, 10, amenity.CurrentAvailability)

	_, err = svc.AdjustCurrentAvailability(ctx, "A1", 0)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.AdjustCurrentAvailability(ctx, "missing", -1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

// The invariant current <= general must survive any sequence of adjustments,
// including interleaved ones.
func TestAdjustCurrentAvailabilityConcurrent(t *testing.T) {
	svc, store := newAmenityFixture(t)
	ctx := context.Background()

	_, err := svc.CreateAmenity(ctx, validAmenity("A1", "S1", 10, 10))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AdjustCurrentAvailability(ctx, "A1", -6)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, models.ErrCapacityExceeded)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one of two 6-unit requests against 10 units may pass")

	amenity, err := store.GetAmenity(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, 4, amenity.CurrentAvailability)
	assert.GreaterOrEqual(t, amenity.CurrentAvailability, 0)
	assert.LessOrEqual(t, amenity.CurrentAvailability, amenity.GeneralAvailability)
}
