package database

import (
	"context"
	"fmt"

	"folio/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Hobby{},
		&models.Experience{},
		&models.Contact{},
	}
}

// PortfolioTables lists the table of every persistent model, in creation order.
func PortfolioTables() []string {
	return []string{"profile", "skill", "project", "hobby", "experience", "contact"}
}

// ResyncSequence moves a postgres id sequence past the largest id stored in
// table. A row inserted under an explicit id leaves the sequence behind
// otherwise. Other dialects assign ids from the table itself and need nothing.
func ResyncSequence(ctx context.Context, db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	sql := fmt.Sprintf(`SELECT setval(
		pg_get_serial_sequence('%[1]s', 'id'),
		COALESCE((SELECT MAX(id) FROM %[1]s), 1),
		(SELECT MAX(id) FROM %[1]s) IS NOT NULL
	)`, table)
	if err := db.WithContext(ctx).Exec(sql).Error; err != nil {
		return fmt.Errorf("failed to reset %s sequence: %w", table, err)
	}
	return nil
}
