package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Gateway[models.Project]
	FindByFeaturedTrue(ctx context.Context) ([]models.Project, error)
	FindAllByCreatedAtDesc(ctx context.Context) ([]models.Project, error)
}

type projectRepository struct {
	store[models.Project]
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{store: newStore[models.Project](db, "project")}
}

func (r *projectRepository) FindByFeaturedTrue(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, "find_by_featured_true", func(db *gorm.DB) *gorm.DB {
		return db.Where(map[string]any{"featured": true}).Order("id")
	})
}

// FindAllByCreatedAtDesc lists newest first; undated projects come last.
func (r *projectRepository) FindAllByCreatedAtDesc(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, "find_all_by_created_at_desc", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC NULLS LAST").Order("id DESC")
	})
}
