package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"venuebook/internal/models"
)

// LinkService manages the venue-amenity association: which amenities a venue
// carries, whether they are inbuilt or restricted, and whether they work.
type LinkService struct {
	linkRepo    models.VenueAmenityRepo
	venueRepo   models.VenueRepo
	amenityRepo models.AmenityRepo
}

func NewLinkService(linkRepo models.VenueAmenityRepo, venueRepo models.VenueRepo, amenityRepo models.AmenityRepo) *LinkService {
	return &LinkService{
		linkRepo:    linkRepo,
		venueRepo:   venueRepo,
		amenityRepo: amenityRepo,
	}
}

func (ls *LinkService) Link(ctx context.Context, venueID, amenityID string, inbuilt, working bool) (*models.VenueAmenity, error) {
	if strings.TrimSpace(venueID) == "" || strings.TrimSpace(amenityID) == "" {
		return nil, fmt.Errorf("venue ID and amenity ID are required: %w", models.ErrValidation)
	}

	if _, err := ls.venueRepo.GetVenue(ctx, venueID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("venue %q does not exist: %w", venueID, models.ErrReference)
		}
		return nil, err
	}
	if _, err := ls.amenityRepo.GetAmenity(ctx, amenityID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("amenity %q does not exist: %w", amenityID, models.ErrReference)
		}
		return nil, err
	}

	link := &models.VenueAmenity{
		LinkID:    uuid.New().String(),
		VenueID:   venueID,
		AmenityID: amenityID,
		Inbuilt:   inbuilt,
		Working:   working,
	}

	return ls.linkRepo.Link(ctx, link)
}

func (ls *LinkService) Unlink(ctx context.Context, linkID string) error {
	if strings.TrimSpace(linkID) == "" {
		return fmt.Errorf("link ID cannot be empty: %w", models.ErrValidation)
	}

	return ls.linkRepo.Unlink(ctx, linkID)
}

// SetWorkingCondition records whether the amenity works at this venue. The
// registry only exposes the flag; excluding broken inbuilt amenities from
// allocation is the booking logic's call.
func (ls *LinkService) SetWorkingCondition(ctx context.Context, linkID string, working bool) (*models.VenueAmenity, error) {
	if strings.TrimSpace(linkID) == "" {
		return nil, fmt.Errorf("link ID cannot be empty: %w", models.ErrValidation)
	}

	return ls.linkRepo.SetWorkingCondition(ctx, linkID, working)
}

func (ls *LinkService) ListForVenue(ctx context.Context, venueID string) ([]*models.VenueAmenity, error) {
	if strings.TrimSpace(venueID) == "" {
		return nil, fmt.Errorf("venue ID cannot be empty: %w", models.ErrValidation)
	}

	return ls.linkRepo.ListLinksForVenue(ctx, venueID)
}
