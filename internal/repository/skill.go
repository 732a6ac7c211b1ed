package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	Gateway[models.Skill]
	// FindByCategory matches category exactly, case included.
	FindByCategory(ctx context.Context, category string) ([]models.Skill, error)
	FindAllByProficiencyDesc(ctx context.Context) ([]models.Skill, error)
}

type skillRepository struct {
	store[models.Skill]
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{store: newStore[models.Skill](db, "skill")}
}

func (r *skillRepository) FindByCategory(ctx context.Context, category string) ([]models.Skill, error) {
	return r.list(ctx, "find_by_category", func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", category).Order("id")
	})
}

func (r *skillRepository) FindAllByProficiencyDesc(ctx context.Context) ([]models.Skill, error) {
	return r.list(ctx, "find_all_by_proficiency_desc", func(db *gorm.DB) *gorm.DB {
		return db.Order("proficiency DESC").Order("id DESC")
	})
}
