package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleStaff      Role = "staff"
	RoleManager    Role = "manager"
	RoleSupervisor Role = "supervisor"
	RoleFaculty    Role = "faculty"
)

// Identity is the canonical person record. UserID is the external identifier
// every other collection references; it is unique across the registry.
type Identity struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"user_id" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Role         Role               `bson:"role" json:"role" validate:"required,oneof=staff manager supervisor faculty"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Department   string             `bson:"department" json:"department" validate:"required"`
	MobileNumber string             `bson:"mobile_number" json:"mobile_number" validate:"required"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt    time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type IdentityRepo interface {
	Register(ctx context.Context, identity *Identity) (*Identity, error)
	Lookup(ctx context.Context, userID string) (*Identity, error)
	UpdateIdentity(ctx context.Context, userID string, update map[string]interface{}) (*Identity, error)
}
