package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	IdentitiesCol      = "user_role"
	VenuesCol          = "venue"
	AmenitiesCol       = "amenities"
	VenueAmenitiesCol  = "venueToAmenities"
	BookingsCol        = "booking"
	BookedAmenitiesCol = "bookedAmenities"
)

type MongoRepo struct {
	client *mongo.Client
	dbName string
}

func NewMongoRepo(client *mongo.Client, dbName string) *MongoRepo {
	return &MongoRepo{
		client: client,
		dbName: dbName,
	}
}

func (m *MongoRepo) Collection(name string) *mongo.Collection {
	return m.client.Database(m.dbName).Collection(name)
}

// isDuplicateOn reports whether err is a duplicate-key error raised by an
// index whose name contains the given key. The driver exposes the offending
// index only through the error message, so match on it.
func isDuplicateOn(err error, indexKey string) bool {
	return mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), indexKey)
}
