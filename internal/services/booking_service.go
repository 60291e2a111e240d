package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"venuebook/internal/helpers"
	"venuebook/internal/models"
	"venuebook/internal/queue"
)

// AmenityStock is the slice of the amenity catalog the booking ledger
// needs: reads and guarded stock adjustments. Adjustments must go through
// this surface rather than the raw store so the catalog cache is
// invalidated on every stock write.
type AmenityStock interface {
	GetAmenity(ctx context.Context, amenityID string) (*models.Amenity, error)
	AdjustCurrentAvailability(ctx context.Context, amenityID string, delta int) (*models.Amenity, error)
}

type BookingService struct {
	bookingRepo  models.BookingRepo
	bookedRepo   models.BookedAmenityRepo
	amenities    AmenityStock
	venueRepo    models.VenueRepo
	identityRepo models.IdentityRepo
	publisher    *queue.Publisher
	logger       *slog.Logger
}

func NewBookingService(
	bookingRepo models.BookingRepo,
	bookedRepo models.BookedAmenityRepo,
	amenities AmenityStock,
	venueRepo models.VenueRepo,
	identityRepo models.IdentityRepo,
	publisher *queue.Publisher,
	logger *slog.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		bookedRepo:   bookedRepo,
		amenities:    amenities,
		venueRepo:    venueRepo,
		identityRepo: identityRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// CreateBooking validates the slot, checks both references, and inserts the
// booking as pending with the conflict flag clear. After insert the
// intersection query runs once more: a concurrent writer can slip between
// the store's overlap check and its insert, and the re-check turns that
// collision into a flagged booking for the adjudication workflow instead of
// two silently overlapping ones.
func (bs *BookingService) CreateBooking(ctx context.Context, requesterID, venueID, date string, timeRange models.TimeRange, description string) (*models.Booking, error) {
	if strings.TrimSpace(requesterID) == "" || strings.TrimSpace(venueID) == "" {
		return nil, fmt.Errorf("requester ID and venue ID are required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("booking description is required: %w", models.ErrValidation)
	}
	if !helpers.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q: %w", date, models.ErrValidation)
	}
	start, end, err := helpers.NormalizeTimeRange(timeRange.Start, timeRange.End)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, models.ErrValidation)
	}

	if _, err := bs.identityRepo.Lookup(ctx, requesterID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("requester %q does not exist: %w", requesterID, models.ErrReference)
		}
		return nil, err
	}
	if _, err := bs.venueRepo.GetVenue(ctx, venueID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("venue %q does not exist: %w", venueID, models.ErrReference)
		}
		return nil, err
	}

	booking := &models.Booking{
		BookingID:   uuid.New().String(),
		RequesterID: requesterID,
		VenueID:     venueID,
		Status:      models.BookingPending,
		Conflict:    false,
		Date:        date,
		Time:        models.TimeRange{Start: start, End: end},
		Description: description,
	}

	created, err := bs.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	overlapping, err := bs.bookingRepo.CountOverlapping(ctx, created.VenueID, created.Date, created.Time, created.BookingID)
	if err != nil {
		bs.logger.Error("failed to re-check slot overlap after insert",
			"booking_id", created.BookingID, "error", err)
		return created, nil
	}
	if overlapping > 0 {
		return bs.FlagConflict(ctx, created.BookingID)
	}

	return created, nil
}

func (bs *BookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("booking ID cannot be empty: %w", models.ErrValidation)
	}

	return bs.bookingRepo.GetBooking(ctx, bookingID)
}

func (bs *BookingService) ListForVenue(ctx context.Context, venueID, date string) ([]*models.Booking, error) {
	if strings.TrimSpace(venueID) == "" {
		return nil, fmt.Errorf("venue ID cannot be empty: %w", models.ErrValidation)
	}
	if date != "" && !helpers.ValidDate(date) {
		return nil, fmt.Errorf("invalid date %q: %w", date, models.ErrValidation)
	}

	return bs.bookingRepo.ListBookingsForVenue(ctx, venueID, date)
}

// UpdateStatus enforces the transition set {pending->booked, pending->canceled,
// booked->canceled}. A booking moving to canceled releases its amenity
// requests back to stock.
func (bs *BookingService) UpdateStatus(ctx context.Context, bookingID string, newStatus models.BookingStatus) (*models.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("booking ID cannot be empty: %w", models.ErrValidation)
	}
	if !models.ValidBookingStatus(newStatus) {
		return nil, fmt.Errorf("unknown status %q: %w", newStatus, models.ErrValidation)
	}

	booking, err := bs.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("%s -> %s: %w", booking.Status, newStatus, models.ErrInvalidTransition)
	}

	updated, err := bs.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus)
	if err != nil {
		return nil, err
	}

	if newStatus == models.BookingCanceled {
		bs.releaseAllAmenities(ctx, bookingID)
	}

	return updated, nil
}

// FlagConflict marks the booking for the external priority-adjudication
// workflow and publishes the conflict event. Publish failures are logged and
// swallowed; the flag on the ledger is the source of truth.
func (bs *BookingService) FlagConflict(ctx context.Context, bookingID string) (*models.Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("booking ID cannot be empty: %w", models.ErrValidation)
	}

	booking, err := bs.bookingRepo.FlagConflict(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	event := queue.BookingConflictEvent{
		BookingID:   booking.BookingID,
		VenueID:     booking.VenueID,
		RequesterID: booking.RequesterID,
		Date:        booking.Date,
		Start:       booking.Time.Start,
		End:         booking.Time.End,
		FlaggedAt:   booking.UpdatedAt,
	}
	if err := bs.publisher.PublishBookingConflict(ctx, event); err != nil {
		bs.logger.Error("failed to publish conflict event", "booking_id", bookingID, "error", err)
	}

	return booking, nil
}

// RequestAmenity records the link first, then decrements current
// availability through the catalog's guarded update. When the decrement is
// rejected the link is removed again, so no request ever holds stock it was
// not granted.
func (bs *BookingService) RequestAmenity(ctx context.Context, bookingID, amenityID string, quantity int) (*models.BookedAmenity, error) {
	if strings.TrimSpace(bookingID) == "" || strings.TrimSpace(amenityID) == "" {
		return nil, fmt.Errorf("booking ID and amenity ID are required: %w", models.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("requested quantity must be positive: %w", models.ErrValidation)
	}

	if _, err := bs.bookingRepo.GetBooking(ctx, bookingID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("booking %q does not exist: %w", bookingID, models.ErrReference)
		}
		return nil, err
	}
	if _, err := bs.amenities.GetAmenity(ctx, amenityID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("amenity %q does not exist: %w", amenityID, models.ErrReference)
		}
		return nil, err
	}

	link := &models.BookedAmenity{
		BookingID:         bookingID,
		AmenityID:         amenityID,
		RequestedQuantity: quantity,
	}
	created, err := bs.bookedRepo.AddLink(ctx, link)
	if err != nil {
		return nil, err
	}

	if _, err := bs.amenities.AdjustCurrentAvailability(ctx, amenityID, -quantity); err != nil {
		if _, removeErr := bs.bookedRepo.RemoveLink(ctx, bookingID, amenityID); removeErr != nil {
			bs.logger.Error("failed to roll back booked amenity",
				"booking_id", bookingID, "amenity_id", amenityID, "error", removeErr)
		}
		return nil, err
	}

	return created, nil
}

// ReleaseAmenity drops the request and returns its quantity to stock.
// Removing the link first makes it the atomic claim on the quantity, so two
// releases of the same request cannot both credit stock; if the credit is
// then rejected the link is re-inserted, and the request keeps holding what
// it was granted rather than the quantity vanishing.
func (bs *BookingService) ReleaseAmenity(ctx context.Context, bookingID, amenityID string) error {
	if strings.TrimSpace(bookingID) == "" || strings.TrimSpace(amenityID) == "" {
		return fmt.Errorf("booking ID and amenity ID are required: %w", models.ErrValidation)
	}

	link, err := bs.bookedRepo.RemoveLink(ctx, bookingID, amenityID)
	if err != nil {
		return err
	}

	if _, err := bs.amenities.AdjustCurrentAvailability(ctx, amenityID, link.RequestedQuantity); err != nil {
		if _, addErr := bs.bookedRepo.AddLink(ctx, link); addErr != nil {
			bs.logger.Error("failed to restore booked amenity after rejected stock return",
				"booking_id", bookingID, "amenity_id", amenityID, "error", addErr)
		}
		bs.logger.Error("failed to return amenity stock",
			"booking_id", bookingID, "amenity_id", amenityID,
			"quantity", link.RequestedQuantity, "error", err)
		return err
	}

	return nil
}

func (bs *BookingService) ListAmenitiesForBooking(ctx context.Context, bookingID string) ([]*models.BookedAmenity, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, fmt.Errorf("booking ID cannot be empty: %w", models.ErrValidation)
	}

	return bs.bookedRepo.ListLinksForBooking(ctx, bookingID)
}

func (bs *BookingService) releaseAllAmenities(ctx context.Context, bookingID string) {
	links, err := bs.bookedRepo.ListLinksForBooking(ctx, bookingID)
	if err != nil {
		bs.logger.Error("failed to list booked amenities on cancel", "booking_id", bookingID, "error", err)
		return
	}
	for _, link := range links {
		if err := bs.ReleaseAmenity(ctx, bookingID, link.AmenityID); err != nil {
			bs.logger.Error("failed to release booked amenity on cancel",
				"booking_id", bookingID, "amenity_id", link.AmenityID, "error", err)
		}
	}
}
