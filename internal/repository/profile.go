package repository

import (
	"folio/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for the profile.
type ProfileRepository interface {
	Gateway[models.Profile]
}

type profileRepository struct {
	store[models.Profile]
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	s := newStore[models.Profile](db, "profile")
	s.pinned = true
	return &profileRepository{store: s}
}
