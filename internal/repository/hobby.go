package repository

import (
	"folio/internal/models"

	"gorm.io/gorm"
)

// HobbyRepository defines persistence operations for hobbies.
type HobbyRepository interface {
	Gateway[models.Hobby]
}

type hobbyRepository struct {
	store[models.Hobby]
}

// NewHobbyRepository returns a new HobbyRepository implementation.
func NewHobbyRepository(db *gorm.DB) HobbyRepository {
	return &hobbyRepository{store: newStore[models.Hobby](db, "hobby")}
}
