package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinVenueCapacity = 1
	MaxVenueCapacity = 1000
)

// Venue is a bookable space owned by exactly one manager identity. ManagerID
// references Identity.UserID; the storage layer keeps it unique so a manager
// owns at most one venue.
type Venue struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	VenueID            string             `bson:"venue_id" json:"venue_id" validate:"required"`
	ManagerID          string             `bson:"manager_id" json:"manager_id" validate:"required"`
	AvailabilityStatus bool               `bson:"availability_status" json:"availability_status"`
	Capacity           int                `bson:"capacity" json:"capacity" validate:"min=1,max=1000"`
	Name               string             `bson:"name" json:"name" validate:"required"`
	BlockDetails       string             `bson:"block_details" json:"block_details" validate:"required"`
	CreatedAt          time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt          time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type VenueRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	GetVenue(ctx context.Context, venueID string) (*Venue, error)
	ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error)
	SetAvailability(ctx context.Context, venueID string, status bool) (*Venue, error)
}
