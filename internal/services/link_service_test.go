package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/models"
)

func newLinkFixture(t *testing.T) (*LinkService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	ctx := context.Background()

	identities := NewIdentityService(store)
	_, err := identities.Register(ctx, validIdentity("U1", models.RoleManager))
	require.NoError(t, err)
	_, err = identities.Register(ctx, validIdentity("S1", models.RoleSupervisor))
	require.NoError(t, err)

	venues := NewVenueService(store, store, nil)
	_, err = venues.CreateVenue(ctx, validVenue("V1", "U1", 50))
	require.NoError(t, err)

	amenities := NewAmenityService(store, store, nil)
	_, err = amenities.CreateAmenity(ctx, validAmenity("A1", "S1", 10, 10))
	require.NoError(t, err)

	return NewLinkService(store, store, store), store
}

func TestLinkAmenityToVenue(t *testing.T) {
	svc, _ := newLinkFixture(t)
	ctx := context.Background()

	link, err := svc.Link(ctx, "V1", "A1", true, true)
	require.NoError(t, err)
	assert.NotEmpty(t, link.LinkID)
	assert.True(t, link.Inbuilt)

	// at most one link per (venue, amenity) pair
	_, err = svc.Link(ctx, "V1", "A1", false, true)
	assert.ErrorIs(t, err, models.ErrDuplicateLink)
}

func TestLinkDanglingReferences(t *testing.T) {
	svc, _ := newLinkFixture(t)
	ctx := context.Background()

	_, err := svc.Link(ctx, "ghost", "A1", true, true)
	assert.ErrorIs(t, err, models.ErrReference)

	_, err = svc.Link(ctx, "V1", "ghost", true, true)
	assert.ErrorIs(t, err, models.ErrReference)
}

func TestSetWorkingConditionAndUnlink(t *testing.T) {
	svc, _ := newLinkFixture(t)
	ctx := context.Background()

	link, err := svc.Link(ctx, "V1", "A1", true, true)
	require.NoError(t, err)

	updated, err := svc.SetWorkingCondition(ctx, link.LinkID, false)
	require.NoError(t, err)
	assert.False(t, updated.Working)

	links, err := svc.ListForVenue(ctx, "V1")
	require.NoError(t, err)
	assert.Len(t, links, 1)

	require.NoError(t, svc.Unlink(ctx, link.LinkID))
	assert.ErrorIs(t, svc.Unlink(ctx, link.LinkID), models.ErrNotFound)

	// the pair is free again after unlinking
	_, err = svc.Link(ctx, "V1", "A1", false, false)
	assert.NoError(t, err)
}
