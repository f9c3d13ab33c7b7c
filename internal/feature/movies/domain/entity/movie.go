// Package entity defines the domain entities for the movies feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Movie represents a single catalog entry.
type Movie struct {
	// ID is the unique identifier for the movie, a UUID assigned on creation.
	ID string `gorm:"type:uuid;primaryKey"`

	// Title is the movie title.
	Title string `gorm:"size:255;not null"`

	// Overview is a short plot summary.
	Overview string `gorm:"type:text"`

	// ReleaseYear is the year of the first theatrical release.
	ReleaseYear int

	// Genres holds the genre labels, stored as a JSON column.
	Genres []string `gorm:"serializer:json"`

	// Runtime is the running time in minutes.
	Runtime int

	// PosterURL points at the poster image.
	PosterURL string `gorm:"size:512"`

	// CreatedBy is the id of the user who added the entry.
	CreatedBy string `gorm:"type:uuid"`

	// CreatedAt is the timestamp when the movie was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the movie was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a UUID when none was provided by the caller.
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
