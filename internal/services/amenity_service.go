package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"venuebook/internal/cache"
	"venuebook/internal/models"
)

type AmenityService struct {
	amenityRepo  models.AmenityRepo
	identityRepo models.IdentityRepo
	catalog      *cache.Catalog
}

func NewAmenityService(amenityRepo models.AmenityRepo, identityRepo models.IdentityRepo, catalog *cache.Catalog) *AmenityService {
	return &AmenityService{
		amenityRepo:  amenityRepo,
		identityRepo: identityRepo,
		catalog:      catalog,
	}
}

func (as *AmenityService) CreateAmenity(ctx context.Context, amenity *models.Amenity) (*models.Amenity, error) {
	if amenity == nil {
		return nil, fmt.Errorf("amenity is nil: %w", models.ErrValidation)
	}
	if amenity.AmenityID == "" {
		amenity.AmenityID = uuid.New().String()
	}
	if err := models.Validate.Struct(amenity); err != nil {
		return nil, fmt.Errorf("invalid amenity data: %v: %w", err, models.ErrValidation)
	}
	if amenity.CurrentAvailability > amenity.GeneralAvailability {
		return nil, fmt.Errorf("current availability %d exceeds general availability %d: %w",
			amenity.CurrentAvailability, amenity.GeneralAvailability, models.ErrValidation)
	}

	if _, err := as.identityRepo.Lookup(ctx, amenity.SupervisorID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("supervisor %q does not exist: %w", amenity.SupervisorID, models.ErrValidation)
		}
		return nil, err
	}

	created, err := as.amenityRepo.CreateAmenity(ctx, amenity)
	if err != nil {
		return nil, err
	}
	as.catalog.SetAmenity(ctx, created)

	return created, nil
}

func (as *AmenityService) GetAmenity(ctx context.Context, amenityID string) (*models.Amenity, error) {
	if strings.TrimSpace(amenityID) == "" {
		return nil, fmt.Errorf("amenity ID cannot be empty: %w", models.ErrValidation)
	}

	if amenity, ok := as.catalog.GetAmenity(ctx, amenityID); ok {
		return amenity, nil
	}

	amenity, err := as.amenityRepo.GetAmenity(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	as.catalog.SetAmenity(ctx, amenity)

	return amenity, nil
}

func (as *AmenityService) ListAmenities(ctx context.Context, offset, limit int) ([]*models.Amenity, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit: %w", models.ErrValidation)
	}

	return as.amenityRepo.ListAmenities(ctx, offset, limit)
}

// AdjustCurrentAvailability applies a signed delta; the repo enforces the
// [0, general] bound atomically against concurrent booking requests.
func (as *AmenityService) AdjustCurrentAvailability(ctx context.Context, amenityID string, delta int) (*models.Amenity, error) {
	if strings.TrimSpace(amenityID) == "" {
		return nil, fmt.Errorf("amenity ID cannot be empty: %w", models.ErrValidation)
	}
	if delta == 0 {
		return nil, fmt.Errorf("delta cannot be zero: %w", models.ErrValidation)
	}

	amenity, err := as.amenityRepo.AdjustCurrentAvailability(ctx, amenityID, delta)
	if err != nil {
		return nil, err
	}
	as.catalog.InvalidateAmenity(ctx, amenityID)

	return amenity, nil
}
