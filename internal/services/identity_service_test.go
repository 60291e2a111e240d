package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/internal/models"
)

func validIdentity(userID string, role models.Role) *models.Identity {
	return &models.Identity{
		UserID:       userID,
		Name:         "Ama Mensah",
		Role:         role,
		Email:        "ama.mensah@example.edu",
		Department:   "Computer Science",
		MobileNumber: "0241234567",
	}
}

func TestRegisterIdentity(t *testing.T) {
	store := newFakeStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, validIdentity("U1", models.RoleManager))
	require.NoError(t, err)
	assert.Equal(t, "U1", created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = svc.Register(ctx, validIdentity("U1", models.RoleStaff))
	assert.ErrorIs(t, err, models.ErrDuplicateIdentity)
}

func TestRegisterIdentityValidation(t *testing.T) {
	store := newFakeStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	missingName := validIdentity("U2", models.RoleFaculty)
	missingName.Name = ""
	_, err := svc.Register(ctx, missingName)
	assert.ErrorIs(t, err, models.ErrValidation)

	badRole := validIdentity("U3", models.Role("janitor"))
	_, err = svc.Register(ctx, badRole)
	assert.ErrorIs(t, err, models.ErrValidation)

	badEmail := validIdentity("U4", models.RoleStaff)
	badEmail.Email = "not-an-email"
	_, err = svc.Register(ctx, badEmail)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestLookupIdentity(t *testing.T) {
	store := newFakeStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	_, err := svc.Lookup(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.Lookup(ctx, "  ")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Register(ctx, validIdentity("U5", models.RoleSupervisor))
	require.NoError(t, err)

	found, err := svc.Lookup(ctx, "U5")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSupervisor, found.Role)
}

func TestUpdateIdentity(t *testing.T) {
	store := newFakeStore()
	svc := NewIdentityService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, validIdentity("U6", models.RoleStaff))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "U6", map[string]interface{}{"role": "manager"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, updated.Role)

	_, err = svc.Update(ctx, "U6", map[string]interface{}{"role": "janitor"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.Update(ctx, "U6", map[string]interface{}{})
	assert.ErrorIs(t, err, models.ErrValidation)
}
