package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VenueAmenity declares that an amenity belongs to a venue, either built in
// or externally restricted, with its working condition. The (venue, amenity)
// pair is unique at the storage level. The registry only records condition;
// excluding non-working amenities from allocation is the booking logic's job.
type VenueAmenity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LinkID    string             `bson:"link_id" json:"link_id"`
	VenueID   string             `bson:"venue_id" json:"venue_id" validate:"required"`
	AmenityID string             `bson:"amenity_id" json:"amenity_id" validate:"required"`
	Inbuilt   bool               `bson:"inbuilt" json:"inbuilt"`
	Working   bool               `bson:"working" json:"working"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type VenueAmenityRepo interface {
	Link(ctx context.Context, link *VenueAmenity) (*VenueAmenity, error)
	Unlink(ctx context.Context, linkID string) error
	SetWorkingCondition(ctx context.Context, linkID string, working bool) (*VenueAmenity, error)
	ListLinksForVenue(ctx context.Context, venueID string) ([]*VenueAmenity, error)
}

// BookedAmenity records one booking's requested quantity of one amenity.
// The (booking, amenity) pair is unique at the storage level.
type BookedAmenity struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BookingID         string             `bson:"booking_id" json:"booking_id" validate:"required"`
	AmenityID         string             `bson:"amenity_id" json:"amenity_id" validate:"required"`
	RequestedQuantity int                `bson:"requested_quantity" json:"requested_quantity" validate:"min=1"`
	CreatedAt         time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type BookedAmenityRepo interface {
	AddLink(ctx context.Context, link *BookedAmenity) (*BookedAmenity, error)
	// RemoveLink deletes the pair and returns the removed record so callers
	// can return its quantity to the amenity's current availability.
	RemoveLink(ctx context.Context, bookingID, amenityID string) (*BookedAmenity, error)
	ListLinksForBooking(ctx context.Context, bookingID string) ([]*BookedAmenity, error)
}
