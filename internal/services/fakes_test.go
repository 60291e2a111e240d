package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"venuebook/internal/models"
)

// fakeStore is an in-memory stand-in for the Mongo repo. It mirrors the
// store's semantics the services rely on: uniqueness of user_id, manager_id
// and the two link pairs, the overlap check on booking insert, and the
// guarded atomic availability adjustment.
type fakeStore struct {
	mu         sync.Mutex
	identities map[string]*models.Identity
	venues     map[string]*models.Venue
	amenities  map[string]*models.Amenity
	links      map[string]*models.VenueAmenity
	bookings   map[string]*models.Booking
	booked     map[string]*models.BookedAmenity
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		identities: make(map[string]*models.Identity),
		venues:     make(map[string]*models.Venue),
		amenities:  make(map[string]*models.Amenity),
		links:      make(map[string]*models.VenueAmenity),
		bookings:   make(map[string]*models.Booking),
		booked:     make(map[string]*models.BookedAmenity),
	}
}

func bookedKey(bookingID, amenityID string) string {
	return bookingID + "/" + amenityID
}

func (f *fakeStore) Register(ctx context.Context, identity *models.Identity) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.identities[identity.UserID]; exists {
		return nil, fmt.Errorf("user %q: %w", identity.UserID, models.ErrDuplicateIdentity)
	}
	now := time.Now()
	identity.CreatedAt = now
	identity.UpdatedAt = now
	f.identities[identity.UserID] = identity
	return identity, nil
}

func (f *fakeStore) Lookup(ctx context.Context, userID string) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.identities[userID]
	if !ok {
		return nil, fmt.Errorf("identity %q: %w", userID, models.ErrNotFound)
	}
	return identity, nil
}

func (f *fakeStore) UpdateIdentity(ctx context.Context, userID string, update map[string]interface{}) (*models.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	identity, ok := f.identities[userID]
	if !ok {
		return nil, fmt.Errorf("identity %q: %w", userID, models.ErrNotFound)
	}
	if role, ok := update["role"].(string); ok {
		identity.Role = models.Role(role)
	}
	if dept, ok := update["department"].(string); ok {
		identity.Department = dept
	}
	identity.UpdatedAt = time.Now()
	return identity, nil
}

func (f *fakeStore) CreateVenue(ctx context.Context, venue *models.Venue) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.venues[venue.VenueID]; exists {
		return nil, fmt.Errorf("venue %q already exists: %w", venue.VenueID, models.ErrValidation)
	}
	for _, existing := range f.venues {
		if existing.ManagerID == venue.ManagerID {
			return nil, fmt.Errorf("manager %q already owns a venue: %w", venue.ManagerID, models.ErrValidation)
		}
	}
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	f.venues[venue.VenueID] = venue
	return venue, nil
}

func (f *fakeStore) GetVenue(ctx context.Context, venueID string) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	venue, ok := f.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("venue %q: %w", venueID, models.ErrNotFound)
	}
	return venue, nil
}

func (f *fakeStore) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var venues []*models.Venue
	for _, venue := range f.venues {
		venues = append(venues, venue)
	}
	total := len(venues)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return venues[offset:end], total, nil
}

func (f *fakeStore) SetAvailability(ctx context.Context, venueID string, status bool) (*models.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	venue, ok := f.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("venue %q: %w", venueID, models.ErrNotFound)
	}
	venue.AvailabilityStatus = status
	venue.UpdatedAt = time.Now()
	return venue, nil
}

func (f *fakeStore) CreateAmenity(ctx context.Context, amenity *models.Amenity) (*models.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.amenities[amenity.AmenityID]; exists {
		return nil, fmt.Errorf("amenity %q already exists: %w", amenity.AmenityID, models.ErrValidation)
	}
	now := time.Now()
	amenity.CreatedAt = now
	amenity.UpdatedAt = now
	f.amenities[amenity.AmenityID] = amenity
	return amenity, nil
}

func (f *fakeStore) GetAmenity(ctx context.Context, amenityID string) (*models.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	amenity, ok := f.amenities[amenityID]
	if !ok {
		return nil, fmt.Errorf("amenity %q: %w", amenityID, models.ErrNotFound)
	}
	return amenity, nil
}

func (f *fakeStore) ListAmenities(ctx context.Context, offset, limit int) ([]*models.Amenity, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var amenities []*models.Amenity
	for _, amenity := range f.amenities {
		amenities = append(amenities, amenity)
	}
	total := len(amenities)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return amenities[offset:end], total, nil
}

// AdjustCurrentAvailability holds the lock across check and increment, the
// in-memory equivalent of the guarded single-document update.
func (f *fakeStore) AdjustCurrentAvailability(ctx context.Context, amenityID string, delta int) (*models.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	amenity, ok := f.amenities[amenityID]
	if !ok {
		return nil, fmt.Errorf("amenity %q: %w", amenityID, models.ErrNotFound)
	}
	next := amenity.CurrentAvailability + delta
	if next < 0 || next > amenity.GeneralAvailability {
		return nil, fmt.Errorf("amenity %q cannot absorb delta %d: %w", amenityID, delta, models.ErrCapacityExceeded)
	}
	amenity.CurrentAvailability = next
	amenity.UpdatedAt = time.Now()
	return amenity, nil
}

func (f *fakeStore) Link(ctx context.Context, link *models.VenueAmenity) (*models.VenueAmenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.links {
		if existing.VenueID == link.VenueID && existing.AmenityID == link.AmenityID {
			return nil, fmt.Errorf("venue %q / amenity %q: %w", link.VenueID, link.AmenityID, models.ErrDuplicateLink)
		}
	}
	now := time.Now()
	link.CreatedAt = now
	link.UpdatedAt = now
	f.links[link.LinkID] = link
	return link, nil
}

func (f *fakeStore) Unlink(ctx context.Context, linkID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.links[linkID]; !ok {
		return fmt.Errorf("link %q: %w", linkID, models.ErrNotFound)
	}
	delete(f.links, linkID)
	return nil
}

func (f *fakeStore) SetWorkingCondition(ctx context.Context, linkID string, working bool) (*models.VenueAmenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	link, ok := f.links[linkID]
	if !ok {
		return nil, fmt.Errorf("link %q: %w", linkID, models.ErrNotFound)
	}
	link.Working = working
	link.UpdatedAt = time.Now()
	return link, nil
}

func (f *fakeStore) ListLinksForVenue(ctx context.Context, venueID string) ([]*models.VenueAmenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var links []*models.VenueAmenity
	for _, link := range f.links {
		if link.VenueID == venueID {
			links = append(links, link)
		}
	}
	return links, nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.bookings {
		if existing.VenueID != booking.VenueID || existing.Date != booking.Date {
			continue
		}
		if existing.Status == models.BookingCanceled {
			continue
		}
		if existing.Time.Overlaps(booking.Time) {
			return nil, fmt.Errorf("venue %q on %s %s-%s: %w",
				booking.VenueID, booking.Date, booking.Time.Start, booking.Time.End, models.ErrSlotConflict)
		}
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	f.bookings[booking.BookingID] = booking
	return booking, nil
}

func (f *fakeStore) CountOverlapping(ctx context.Context, venueID, date string, tr models.TimeRange, excludeBookingID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, existing := range f.bookings {
		if existing.BookingID == excludeBookingID {
			continue
		}
		if existing.VenueID != venueID || existing.Date != date {
			continue
		}
		if existing.Status == models.BookingCanceled {
			continue
		}
		if existing.Time.Overlaps(tr) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", bookingID, models.ErrNotFound)
	}
	return booking, nil
}

func (f *fakeStore) ListBookingsForVenue(ctx context.Context, venueID, date string) ([]*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookings []*models.Booking
	for _, booking := range f.bookings {
		if booking.VenueID != venueID {
			continue
		}
		if date != "" && booking.Date != date {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (f *fakeStore) UpdateStatus(ctx context.Context, bookingID string, from, to models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", bookingID, models.ErrNotFound)
	}
	if booking.Status != from {
		return nil, fmt.Errorf("booking %q is no longer %q: %w", bookingID, from, models.ErrInvalidTransition)
	}
	booking.Status = to
	booking.UpdatedAt = time.Now()
	return booking, nil
}

func (f *fakeStore) FlagConflict(ctx context.Context, bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", bookingID, models.ErrNotFound)
	}
	booking.Conflict = true
	booking.UpdatedAt = time.Now()
	return booking, nil
}

func (f *fakeStore) AddLink(ctx context.Context, link *models.BookedAmenity) (*models.BookedAmenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := bookedKey(link.BookingID, link.AmenityID)
	if _, exists := f.booked[key]; exists {
		return nil, fmt.Errorf("booking %q / amenity %q: %w", link.BookingID, link.AmenityID, models.ErrDuplicateLink)
	}
	link.CreatedAt = time.Now()
	f.booked[key] = link
	return link, nil
}

func (f *fakeStore) RemoveLink(ctx context.Context, bookingID, amenityID string) (*models.BookedAmenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := bookedKey(bookingID, amenityID)
	link, ok := f.booked[key]
	if !ok {
		return nil, fmt.Errorf("booking %q / amenity %q: %w", bookingID, amenityID, models.ErrNotFound)
	}
	delete(f.booked, key)
	return link, nil
}

func (f *fakeStore) ListLinksForBooking(ctx context.Context, bookingID string) ([]*models.BookedAmenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var links []*models.BookedAmenity
	for _, link := range f.booked {
		if link.BookingID == bookingID {
			links = append(links, link)
		}
	}
	return links, nil
}
