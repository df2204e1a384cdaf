package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a classification bucket for businesses. Externally managed,
// read-only here. Icon is a key into the frontend's badge map; unknown keys
// fall back to a default badge there, so no validation happens server-side.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	Icon      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Category) TableName() string { return "categories" }
