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

func (m *MongoRepo) Link(ctx context.Context, link *VenueAmenity) (*VenueAmenity, error) {
	col := m.Collection(VenueAmenitiesCol)

	now := time.Now()
	link.CreatedAt = now
	link.UpdatedAt = now

	if _, err := col.InsertOne(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("venue %q / amenity %q: %w", link.VenueID, link.AmenityID, ErrDuplicateLink)
		}
		return nil, fmt.Errorf("failed to link amenity to venue: %v", err)
	}

	return link, nil
}

func (m *MongoRepo) Unlink(ctx context.Context, linkID string) error {
	col := m.Collection(VenueAmenitiesCol)

	res, err := col.DeleteOne(ctx, bson.M{"link_id": linkID})
	if err != nil {
		return fmt.Errorf("failed to unlink amenity: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("link %q: %w", linkID, ErrNotFound)
	}

	return nil
}

func (m *MongoRepo) SetWorkingCondition(ctx context.Context, linkID string, working bool) (*VenueAmenity, error) {
	col := m.Collection(VenueAmenitiesCol)

	update := bson.M{"$set": bson.M{
		"working":    working,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var link VenueAmenity
	err := col.FindOneAndUpdate(ctx, bson.M{"link_id": linkID}, update, opts).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("link %q: %w", linkID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to set working condition: %v", err)
	}

	return &link, nil
}

func (m *MongoRepo) ListLinksForVenue(ctx context.Context, venueID string) ([]*VenueAmenity, error) {
	col := m.Collection(VenueAmenitiesCol)

	cursor, err := col.Find(ctx, bson.M{"venue_id": venueID})
	if err != nil {
		return nil, fmt.Errorf("failed to list venue amenities: %v", err)
	}
	defer cursor.Close(ctx)

	var links []*VenueAmenity
	for cursor.Next(ctx) {
		var link VenueAmenity
		if err := cursor.Decode(&link); err != nil {
			return nil, fmt.Errorf("failed to decode link: %v", err)
		}
		links = append(links, &link)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return links, nil
}

func (m *MongoRepo) AddLink(ctx context.Context, link *BookedAmenity) (*BookedAmenity, error) {
	col := m.Collection(BookedAmenitiesCol)

	link.CreatedAt = time.Now()

	if _, err := col.InsertOne(ctx, link); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("booking %q / amenity %q: %w", link.BookingID, link.AmenityID, ErrDuplicateLink)
		}
		return nil, fmt.Errorf("failed to add booked amenity: %v", err)
	}

	return link, nil
}

func (m *MongoRepo) RemoveLink(ctx context.Context, bookingID, amenityID string) (*BookedAmenity, error) {
	col := m.Collection(BookedAmenitiesCol)

	var link BookedAmenity
	err := col.FindOneAndDelete(ctx, bson.M{"booking_id": bookingID, "amenity_id": amenityID}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("booking %q / amenity %q: %w", bookingID, amenityID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to remove booked amenity: %v", err)
	}

	return &link, nil
}

func (m *MongoRepo) ListLinksForBooking(ctx context.Context, bookingID string) ([]*BookedAmenity, error) {
	col := m.Collection(BookedAmenitiesCol)

	cursor, err := col.Find(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to list booked amenities: %v", err)
	}
	defer cursor.Close(ctx)

	var links []*BookedAmenity
	for cursor.Next(ctx) {
		var link BookedAmenity
		if err := cursor.Decode(&link); err != nil {
			return nil, fmt.Errorf("failed to decode booked amenity: %v", err)
		}
		links = append(links, &link)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return links, nil
}
