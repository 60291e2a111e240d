// Package cache is a read-through cache for catalog lookups. A nil *Catalog
// is valid and disables caching, so callers never branch on whether Redis is
// configured.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"venuebook/internal/models"
)

type Catalog struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalog(client *redis.Client, ttl time.Duration) *Catalog {
	if client == nil {
		return nil
	}
	return &Catalog{client: client, ttl: ttl}
}

func venueKey(venueID string) string     { return "venuebook:venue:" + venueID }
func amenityKey(amenityID string) string { return "venuebook:amenity:" + amenityID }

func (c *Catalog) GetVenue(ctx context.Context, venueID string) (*models.Venue, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, venueKey(venueID)).Bytes()
	if err != nil {
		return nil, false
	}
	var venue models.Venue
	if err := json.Unmarshal(data, &venue); err != nil {
		return nil, false
	}
	return &venue, true
}

func (c *Catalog) SetVenue(ctx context.Context, venue *models.Venue) {
	if c == nil || venue == nil {
		return
	}
	data, err := json.Marshal(venue)
	if err != nil {
		return
	}
	c.client.Set(ctx, venueKey(venue.VenueID), data, c.ttl)
}

func (c *Catalog) InvalidateVenue(ctx context.Context, venueID string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, venueKey(venueID))
}

func (c *Catalog) GetAmenity(ctx context.Context, amenityID string) (*models.Amenity, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, amenityKey(amenityID)).Bytes()
	if err != nil {
		return nil, false
	}
	var amenity models.Amenity
	if err := json.Unmarshal(data, &amenity); err != nil {
		return nil, false
	}
	return &amenity, true
}

func (c *Catalog) SetAmenity(ctx context.Context, amenity *models.Amenity) {
	if c == nil || amenity == nil {
		return
	}
	data, err := json.Marshal(amenity)
	if err != nil {
		return
	}
	c.client.Set(ctx, amenityKey(amenity.AmenityID), data, c.ttl)
}

func (c *Catalog) InvalidateAmenity(ctx context.Context, amenityID string) {
	if c == nil {
		return
	}
	c.client.Del(ctx, amenityKey(amenityID))
}
