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

func (m *MongoRepo) CreateAmenity(ctx context.Context, amenity *Amenity) (*Amenity, error) {
	col := m.Collection(AmenitiesCol)

	now := time.Now()
	amenity.CreatedAt = now
	amenity.UpdatedAt = now

	if _, err := col.InsertOne(ctx, amenity); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("amenity %q already exists: %w", amenity.AmenityID, ErrValidation)
		}
		return nil, fmt.Errorf("failed to create amenity: %v", err)
	}

	return amenity, nil
}

func (m *MongoRepo) GetAmenity(ctx context.Context, amenityID string) (*Amenity, error) {
	col := m.Collection(AmenitiesCol)

	var amenity Amenity
	err := col.FindOne(ctx, bson.M{"amenity_id": amenityID}).Decode(&amenity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("amenity %q: %w", amenityID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get amenity: %v", err)
	}

	return &amenity, nil
}

func (m *MongoRepo) ListAmenities(ctx context.Context, offset, limit int) ([]*Amenity, int, error) {
	col := m.Collection(AmenitiesCol)

	total, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count amenities: %v", err)
	}

	opts := options.Find().
		SetSkip(int64(offset)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"name": 1})

	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list amenities: %v", err)
	}
	defer cursor.Close(ctx)

	var amenities []*Amenity
	for cursor.Next(ctx) {
		var amenity Amenity
		if err := cursor.Decode(&amenity); err != nil {
			return nil, 0, fmt.Errorf("failed to decode amenity: %v", err)
		}
		amenities = append(amenities, &amenity)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("cursor error: %v", err)
	}

	return amenities, int(total), nil
}

// AdjustCurrentAvailability applies delta in a single guarded update so two
// concurrent requests can never both pass the bounds check. The filter admits
// the document only when current+delta stays within [0, general], which makes
// the check and the increment one atomic store operation.
func (m *MongoRepo) AdjustCurrentAvailability(ctx context.Context, amenityID string, delta int) (*Amenity, error) {
	col := m.Collection(AmenitiesCol)

	filter := bson.M{
		"amenity_id": amenityID,
		"$expr": bson.M{"$and": bson.A{
			bson.M{"$gte": bson.A{bson.M{"$add": bson.A{"$current_availability", delta}}, 0}},
			bson.M{"$lte": bson.A{bson.M{"$add": bson.A{"$current_availability", delta}}, "$general_availability"}},
		}},
	}
	update := bson.M{
		"$inc": bson.M{"current_availability": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var amenity Amenity
	err := col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&amenity)
	if err == nil {
		return &amenity, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to adjust availability: %v", err)
	}

	// No match: either the amenity is missing or the guard rejected the delta.
	if _, getErr := m.GetAmenity(ctx, amenityID); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("amenity %q cannot absorb delta %d: %w", amenityID, delta, ErrCapacityExceeded)
}
