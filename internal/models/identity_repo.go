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

func (m *MongoRepo) Register(ctx context.Context, identity *Identity) (*Identity, error) {
	col := m.Collection(IdentitiesCol)

	now := time.Now()
	identity.CreatedAt = now
	identity.UpdatedAt = now

	if _, err := col.InsertOne(ctx, identity); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("user %q: %w", identity.UserID, ErrDuplicateIdentity)
		}
		return nil, fmt.Errorf("failed to register identity: %v", err)
	}

	return identity, nil
}

func (m *MongoRepo) Lookup(ctx context.Context, userID string) (*Identity, error) {
	col := m.Collection(IdentitiesCol)

	var identity Identity
	err := col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("identity %q: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up identity: %v", err)
	}

	return &identity, nil
}

// UpdateIdentity applies a partial update (role/department changes and the
// like). The external user id itself is immutable.
func (m *MongoRepo) UpdateIdentity(ctx context.Context, userID string, update map[string]interface{}) (*Identity, error) {
	col := m.Collection(IdentitiesCol)

	set := bson.M{"updated_at": time.Now()}
	for key, value := range update {
		if key == "user_id" || key == "_id" {
			continue
		}
		set[key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var identity Identity
	err := col.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, bson.M{"$set": set}, opts).Decode(&identity)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("identity %q: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update identity: %v", err)
	}

	return &identity, nil
}
