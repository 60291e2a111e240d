package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Amenity is a finite resource overseen by a supervisor identity.
// CurrentAvailability tracks units not committed to bookings and never
// exceeds GeneralAvailability.
type Amenity struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AmenityID           string             `bson:"amenity_id" json:"amenity_id"`
	SupervisorID        string             `bson:"supervisor_id" json:"supervisor_id" validate:"required"`
	Name                string             `bson:"name" json:"name" validate:"required"`
	GeneralAvailability int                `bson:"general_availability" json:"general_availability" validate:"min=0"`
	CurrentAvailability int                `bson:"current_availability" json:"current_availability" validate:"min=0"`
	BlockDetails        string             `bson:"block_details" json:"block_details" validate:"required"`
	Description         string             `bson:"description" json:"description" validate:"required"`
	CreatedAt           time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt           time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type AmenityRepo interface {
	CreateAmenity(ctx context.Context, amenity *Amenity) (*Amenity, error)
	GetAmenity(ctx context.Context, amenityID string) (*Amenity, error)
	ListAmenities(ctx context.Context, offset, limit int) ([]*Amenity, int, error)
	// AdjustCurrentAvailability applies delta atomically; the store rejects
	// any result outside [0, general_availability] with ErrCapacityExceeded.
	AdjustCurrentAvailability(ctx context.Context, amenityID string, delta int) (*Amenity, error)
}
