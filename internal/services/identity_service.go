package services

import (
	"context"
	"fmt"
	"strings"

	"venuebook/internal/models"
)

type IdentityService struct {
	identityRepo models.IdentityRepo
}

func NewIdentityService(identityRepo models.IdentityRepo) *IdentityService {
	return &IdentityService{
		identityRepo: identityRepo,
	}
}

// Register validates the record and appends it to the registry. The store's
// unique index on the external user id turns double registration into
// ErrDuplicateIdentity.
func (is *IdentityService) Register(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	if identity == nil {
		return nil, fmt.Errorf("identity is nil: %w", models.ErrValidation)
	}
	identity.UserID = strings.TrimSpace(identity.UserID)
	if err := models.Validate.Struct(identity); err != nil {
		return nil, fmt.Errorf("invalid identity data: %v: %w", err, models.ErrValidation)
	}

	return is.identityRepo.Register(ctx, identity)
}

func (is *IdentityService) Lookup(ctx context.Context, userID string) (*models.Identity, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID cannot be empty: %w", models.ErrValidation)
	}

	return is.identityRepo.Lookup(ctx, userID)
}

// Update applies partial changes such as role or department moves. There is
// no delete: identities are append/update only.
func (is *IdentityService) Update(ctx context.Context, userID string, update map[string]interface{}) (*models.Identity, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("user ID cannot be empty: %w", models.ErrValidation)
	}
	if len(update) == 0 {
		return nil, fmt.Errorf("update cannot be empty: %w", models.ErrValidation)
	}
	if role, ok := update["role"]; ok {
		r, isStr := role.(string)
		if !isStr || !validRole(models.Role(r)) {
			return nil, fmt.Errorf("invalid role %v: %w", role, models.ErrValidation)
		}
	}

	return is.identityRepo.UpdateIdentity(ctx, userID, update)
}

func validRole(r models.Role) bool {
	switch r {
	case models.RoleStaff, models.RoleManager, models.RoleSupervisor, models.RoleFaculty:
		return true
	}
	return false
}
