package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// ContactRepository defines persistence operations for contact messages.
type ContactRepository interface {
	Gateway[models.Contact]
	FindAllByCreatedAtDesc(ctx context.Context) ([]models.Contact, error)
	FindByReadFalse(ctx context.Context) ([]models.Contact, error)
}

type contactRepository struct {
	store[models.Contact]
}

// NewContactRepository returns a new ContactRepository implementation.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{store: newStore[models.Contact](db, "contact")}
}

func (r *contactRepository) FindAllByCreatedAtDesc(ctx context.Context) ([]models.Contact, error) {
	return r.list(ctx, "find_all_by_created_at_desc", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC NULLS LAST").Order("id DESC")
	})
}

func (r *contactRepository) FindByReadFalse(ctx context.Context) ([]models.Contact, error) {
	return r.list(ctx, "find_by_read_false", func(db *gorm.DB) *gorm.DB {
		return db.Where(map[string]any{"read": false}).Order("id")
	})
}
