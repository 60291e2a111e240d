package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the uniqueness constraints every write path relies
// on. Runs at startup, before the server accepts traffic; Mongo treats an
// existing identical index as a no-op.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	// The slot index is partial: a canceled booking must not keep its exact
	// start slot locked, only live bookings participate in uniqueness.
	liveBookings := bson.M{"status": bson.M{"$in": bson.A{BookingPending, BookingBooked}}}

	specs := []struct {
		col  string
		keys bson.D
		opts *options.IndexOptions
	}{
		{IdentitiesCol, bson.D{{Key: "user_id", Value: 1}}, options.Index().SetUnique(true)},
		{VenuesCol, bson.D{{Key: "venue_id", Value: 1}}, options.Index().SetUnique(true)},
		{VenuesCol, bson.D{{Key: "manager_id", Value: 1}}, options.Index().SetUnique(true)},
		{AmenitiesCol, bson.D{{Key: "amenity_id", Value: 1}}, options.Index().SetUnique(true)},
		{VenueAmenitiesCol, bson.D{{Key: "venue_id", Value: 1}, {Key: "amenity_id", Value: 1}}, options.Index().SetUnique(true)},
		{BookingsCol, bson.D{{Key: "booking_id", Value: 1}}, options.Index().SetUnique(true)},
		{BookingsCol, bson.D{{Key: "venue_id", Value: 1}, {Key: "date", Value: 1}, {Key: "time.start", Value: 1}},
			options.Index().SetUnique(true).SetPartialFilterExpression(liveBookings)},
		{BookedAmenitiesCol, bson.D{{Key: "booking_id", Value: 1}, {Key: "amenity_id", Value: 1}}, options.Index().SetUnique(true)},
	}

	for _, spec := range specs {
		model := mongo.IndexModel{Keys: spec.keys, Options: spec.opts}
		if _, err := m.Collection(spec.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %v", spec.col, err)
		}
	}

	return nil
}
