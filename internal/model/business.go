package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Business represents a published directory entry. Rows are created outside
// this system (manual promotion of reviewed submissions) and are read-only
// here.
type Business struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Description *string
	Phone       *string
	Whatsapp    *string
	Address     *string
	Hours       *string
	// Loosely-typed JSONB columns; use the accessors below instead of
	// decoding these by hand. Malformed shapes degrade to "absent".
	Services   datatypes.JSON
	Image      *string
	Socials    datatypes.JSON
	Location   datatypes.JSON
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Business) TableName() string { return "businesses" }

// GeoPoint is a lat/lng pair stored in the location JSONB column.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Visible reports whether the point should be surfaced on a map.
// Zero coordinates count as absent: a (0,0) location is placeholder
// noise, never a real address in Olanchito.
func (p GeoPoint) Visible() bool {
	return p.Lat != 0 && p.Lng != 0
}

// ServiceList decodes the services column into an ordered list of
// non-empty names. Anything other than a JSON array of strings is
// treated as "no services".
func (b *Business) ServiceList() []string {
	if len(b.Services) == 0 {
		return nil
	}
	var raw []string
	if err := json.Unmarshal(b.Services, &raw); err != nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SocialMap decodes the socials column (website/instagram/facebook keys).
// A malformed column yields an empty map.
func (b *Business) SocialMap() map[string]string {
	if len(b.Socials) == 0 {
		return nil
	}
	var raw map[string]string
	if err := json.Unmarshal(b.Socials, &raw); err != nil {
		return nil
	}
	return raw
}

// GeoLocation decodes the location column into a GeoPoint, or nil when the
// column is absent or malformed.
func (b *Business) GeoLocation() *GeoPoint {
	if len(b.Location) == 0 {
		return nil
	}
	var p GeoPoint
	if err := json.Unmarshal(b.Location, &p); err != nil {
		return nil
	}
	return &p
}
