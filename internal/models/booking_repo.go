package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// overlapFilter matches non-canceled bookings on the venue and date whose
// half-open range intersects tr.
func overlapFilter(venueID, date string, tr TimeRange) bson.M {
	return bson.M{
		"venue_id":   venueID,
		"date":       date,
		"status":     bson.M{"$ne": BookingCanceled},
		"time.start": bson.M{"$lt": tr.End},
		"time.end":   bson.M{"$gt": tr.Start},
	}
}

// CreateBooking checks for range intersection with non-canceled bookings and
// inserts. The (venue_id, date, time.start) unique index backs the check up
// for exact duplicates; the explicit query is what rejects distinct but
// overlapping ranges, which the index alone cannot express. The check and
// the insert are separate operations, so callers re-check with
// CountOverlapping after insert to catch a concurrent writer that slipped
// between them.
func (m *MongoRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col := m.Collection(BookingsCol)

	count, err := col.CountDocuments(ctx, overlapFilter(booking.VenueID, booking.Date, booking.Time))
	if err != nil {
		return nil, fmt.Errorf("failed to check for overlapping bookings: %v", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("venue %q on %s %s-%s: %w",
			booking.VenueID, booking.Date, booking.Time.Start, booking.Time.End, ErrSlotConflict)
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := col.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("venue %q on %s at %s: %w",
				booking.VenueID, booking.Date, booking.Time.Start, ErrSlotConflict)
		}
		return nil, fmt.Errorf("failed to create booking: %v", err)
	}

	return booking, nil
}

func (m *MongoRepo) CountOverlapping(ctx context.Context, venueID, date string, tr TimeRange, excludeBookingID string) (int64, error) {
	col := m.Collection(BookingsCol)

	filter := overlapFilter(venueID, date, tr)
	filter["booking_id"] = bson.M{"$ne": excludeBookingID}

	count, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings: %v", err)
	}

	return count, nil
}

func (m *MongoRepo) GetBooking(ctx context.Context, bookingID string) (*Booking, error) {
	col := m.Collection(BookingsCol)

	var booking Booking
	err := col.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %q: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %v", err)
	}

	return &booking, nil
}

func (m *MongoRepo) ListBookingsForVenue(ctx context.Context, venueID, date string) ([]*Booking, error) {
	col := m.Collection(BookingsCol)

	filter := bson.M{"venue_id": venueID}
	if date != "" {
		filter["date"] = date
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time.start", Value: 1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	for cursor.Next(ctx) {
		var booking Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

// UpdateStatus filters on the expected current status, so a transition only
// applies if no concurrent writer got there first.
func (m *MongoRepo) UpdateStatus(ctx context.Context, bookingID string, from, to BookingStatus) (*Booking, error) {
	col := m.Collection(BookingsCol)

	update := bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking Booking
	err := col.FindOneAndUpdate(ctx, bson.M{"booking_id": bookingID, "status": from}, update, opts).Decode(&booking)
	if err == nil {
		return &booking, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update booking status: %v", err)
	}

	// No match: the booking is gone or its status moved under us.
	if _, getErr := m.GetBooking(ctx, bookingID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("booking %q is no longer %q: %w", bookingID, from, ErrInvalidTransition)
}

func (m *MongoRepo) FlagConflict(ctx context.Context, bookingID string) (*Booking, error) {
	col := m.Collection(BookingsCol)

	update := bson.M{"$set": bson.M{
		"conflict":   true,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking Booking
	err := col.FindOneAndUpdate(ctx, bson.M{"booking_id": bookingID}, update, opts).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %q: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to flag conflict: %v", err)
	}

	return &booking, nil
}
