package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingBooked   BookingStatus = "booked"
	BookingCanceled BookingStatus = "canceled"
)

// transitions holds the allowed status moves. Everything else is rejected
// with ErrInvalidTransition, including booked -> pending.
var transitions = map[BookingStatus][]BookingStatus{
	BookingPending: {BookingBooked, BookingCanceled},
	BookingBooked:  {BookingCanceled},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingBooked, BookingCanceled:
		return true
	}
	return false
}

// TimeRange is a same-day [Start, End) window in zero-padded "HH:MM". The
// padding keeps lexicographic comparison equal to chronological comparison,
// both here and in store-side range queries.
type TimeRange struct {
	Start string `bson:"start" json:"start" validate:"required"`
	End   string `bson:"end" json:"end" validate:"required"`
}

// Overlaps reports whether two half-open ranges intersect. Back-to-back
// slots (one ending exactly when the other starts) do not overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start < other.End && other.Start < t.End
}

// Booking is one ledger entry: a requester holding a venue for a date and
// time window. Conflict marks the entry for external priority adjudication;
// it is never set at creation.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID   string             `bson:"booking_id" json:"booking_id"`
	RequesterID string             `bson:"requester_id" json:"requester_id" validate:"required"`
	VenueID     string             `bson:"venue_id" json:"venue_id" validate:"required"`
	Status      BookingStatus      `bson:"status" json:"status"`
	Conflict    bool               `bson:"conflict" json:"conflict"`
	Date        string             `bson:"date" json:"date" validate:"required"` // YYYY-MM-DD
	Time        TimeRange          `bson:"time" json:"time"`
	Description string             `bson:"description" json:"description" validate:"required"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type BookingRepo interface {
	// CreateBooking inserts the booking after checking that no non-canceled
	// booking on the same venue and date intersects its time range.
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*Booking, error)
	ListBookingsForVenue(ctx context.Context, venueID, date string) ([]*Booking, error)
	// CountOverlapping reports how many non-canceled bookings on the venue
	// and date intersect the range, excluding the named booking.
	CountOverlapping(ctx context.Context, venueID, date string, tr TimeRange, excludeBookingID string) (int64, error)
	// UpdateStatus moves the booking from one status to another; the filter
	// includes the expected current status so concurrent transitions cannot
	// both apply.
	UpdateStatus(ctx context.Context, bookingID string, from, to BookingStatus) (*Booking, error)
	FlagConflict(ctx context.Context, bookingID string) (*Booking, error)
}
