package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"venuebook/internal/cache"
	"venuebook/internal/helpers"
	"venuebook/internal/models"
)

type VenueService struct {
	venueRepo    models.VenueRepo
	identityRepo models.IdentityRepo
	catalog      *cache.Catalog
}

func NewVenueService(venueRepo models.VenueRepo, identityRepo models.IdentityRepo, catalog *cache.Catalog) *VenueService {
	return &VenueService{
		venueRepo:    venueRepo,
		identityRepo: identityRepo,
		catalog:      catalog,
	}
}

// CreateVenue validates the record and checks the manager reference before
// insert. Manager uniqueness is left to the store's unique index, which is
// the only check that holds across server instances.
func (vs *VenueService) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	if venue == nil {
		return nil, fmt.Errorf("venue is nil: %w", models.ErrValidation)
	}
	venue.VenueID = strings.TrimSpace(venue.VenueID)
	if err := models.Validate.Struct(venue); err != nil {
		return nil, fmt.Errorf("invalid venue data: %v: %w", err, models.ErrValidation)
	}
	if !helpers.ValidCapacity(venue.Capacity) {
		return nil, fmt.Errorf("capacity must be between %d and %d: %w",
			models.MinVenueCapacity, models.MaxVenueCapacity, models.ErrValidation)
	}

	if _, err := vs.identityRepo.Lookup(ctx, venue.ManagerID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("manager %q does not exist: %w", venue.ManagerID, models.ErrValidation)
		}
		return nil, err
	}

	created, err := vs.venueRepo.CreateVenue(ctx, venue)
	if err != nil {
		return nil, err
	}
	vs.catalog.SetVenue(ctx, created)

	return created, nil
}

func (vs *VenueService) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	if strings.TrimSpace(venueID) == "" {
		return nil, fmt.Errorf("venue ID cannot be empty: %w", models.ErrValidation)
	}

	if venue, ok := vs.catalog.GetVenue(ctx, venueID); ok {
		return venue, nil
	}

	venue, err := vs.venueRepo.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	vs.catalog.SetVenue(ctx, venue)

	return venue, nil
}

func (vs *VenueService) GetCapacity(ctx context.Context, venueID string) (int, error) {
	venue, err := vs.GetVenue(ctx, venueID)
	if err != nil {
		return 0, err
	}
	return venue.Capacity, nil
}

func (vs *VenueService) GetManager(ctx context.Context, venueID string) (*models.Identity, error) {
	venue, err := vs.GetVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}
	return vs.identityRepo.Lookup(ctx, venue.ManagerID)
}

func (vs *VenueService) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, fmt.Errorf("invalid offset or limit: %w", models.ErrValidation)
	}

	return vs.venueRepo.ListVenues(ctx, offset, limit)
}

// SetAvailability toggles bookability without touching existing bookings.
func (vs *VenueService) SetAvailability(ctx context.Context, venueID string, status bool) (*models.Venue, error) {
	if strings.TrimSpace(venueID) == "" {
		return nil, fmt.Errorf("venue ID cannot be empty: %w", models.ErrValidation)
	}

	venue, err := vs.venueRepo.SetAvailability(ctx, venueID, status)
	if err != nil {
		return nil, err
	}
	vs.catalog.InvalidateVenue(ctx, venueID)

	return venue, nil
}
