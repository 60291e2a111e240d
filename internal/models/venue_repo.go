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

func (m *MongoRepo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	col := m.Collection(VenuesCol)

	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if _, err := col.InsertOne(ctx, venue); err != nil {
		if isDuplicateOn(err, "manager_id") {
			return nil, fmt.Errorf("manager %q already owns a venue: %w", venue.ManagerID, ErrValidation)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("venue %q already exists: %w", venue.VenueID, ErrValidation)
		}
		return nil, fmt.Errorf("failed to create venue: %v", err)
	}

	return venue, nil
}

func (m *MongoRepo) GetVenue(ctx context.Context, venueID string) (*Venue, error) {
	col := m.Collection(VenuesCol)

	var venue Venue
	err := col.FindOne(ctx, bson.M{"venue_id": venueID}).Decode(&venue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("venue %q: %w", venueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get venue: %v", err)
	}

	return &venue, nil
}

func (m *MongoRepo) ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error) {
	col := m.Collection(VenuesCol)

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count venues: %v", err)
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"created_at": -1})

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list venues: %v", err)
	}
	defer cursor.Close(ctx)

	var venues []*Venue
	for cursor.Next(ctx) {
		var venue Venue
		if err := cursor.Decode(&venue); err != nil {
			return nil, 0, fmt.Errorf("failed to decode venue: %v", err)
		}
		venues = append(venues, &venue)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %v", err)
	}

	return venues, int(total), nil
}

// SetAvailability toggles bookability. Existing bookings are untouched.
func (m *MongoRepo) SetAvailability(ctx context.Context, venueID string, status bool) (*Venue, error) {
	col := m.Collection(VenuesCol)

	update := bson.M{"$set": bson.M{
		"availability_status": status,
		"updated_at":          time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var venue Venue
	err := col.FindOneAndUpdate(ctx, bson.M{"venue_id": venueID}, update, opts).Decode(&venue)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("venue %q: %w", venueID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to set availability: %v", err)
	}

	return &venue, nil
}
