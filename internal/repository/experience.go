package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// ExperienceRepository defines persistence operations for experiences.
type ExperienceRepository interface {
	Gateway[models.Experience]
	FindAllByStartDateDesc(ctx context.Context) ([]models.Experience, error)
}

type experienceRepository struct {
	store[models.Experience]
}

// NewExperienceRepository returns a new ExperienceRepository implementation.
func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{store: newStore[models.Experience](db, "experience")}
}

// FindAllByStartDateDesc lists the most recent position first; rows without a
// start date come last.
func (r *experienceRepository) FindAllByStartDateDesc(ctx context.Context) ([]models.Experience, error) {
	return r.list(ctx, "find_all_by_start_date_desc", func(db *gorm.DB) *gorm.DB {
		return db.Order("start_date DESC NULLS LAST").Order("id DESC")
	})
}
