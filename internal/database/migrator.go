package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"folio/internal/middleware"

	"gorm.io/gorm"
)

// SchemaVersion records one applied migration and the portfolio tables that
// existed once it ran.
type SchemaVersion struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:255;not null"`
	Tables    string    `gorm:"size:255;not null"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (SchemaVersion) TableName() string {
	return "schema_versions"
}

// AppliedVersions returns the applied migration versions in ascending order.
// A database without the log table has applied none.
func AppliedVersions(ctx context.Context, db *gorm.DB) ([]int, error) {
	db = db.WithContext(ctx)
	versions := make([]int, 0)
	if !db.Migrator().HasTable(&SchemaVersion{}) {
		return versions, nil
	}
	if err := db.Model(&SchemaVersion{}).Order("version").Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("read schema versions: %w", err)
	}
	return versions, nil
}

// MissingTables lists the portfolio tables absent from db, in creation order.
func MissingTables(ctx context.Context, db *gorm.DB) []string {
	migrator := db.WithContext(ctx).Migrator()
	var missing []string
	for _, table := range PortfolioTables() {
		if !migrator.HasTable(table) {
			missing = append(missing, table)
		}
	}
	return missing
}

func presentTables(ctx context.Context, db *gorm.DB) []string {
	migrator := db.WithContext(ctx).Migrator()
	present := make([]string, 0, len(PortfolioTables()))
	for _, table := range PortfolioTables() {
		if migrator.HasTable(table) {
			present = append(present, table)
		}
	}
	return present
}

// RunMigrations applies the pending embedded migrations, each in its own
// transaction, and then requires every portfolio table to exist.
func RunMigrations(ctx context.Context, db *gorm.DB) error {
	all, err := Migrations()
	if err != nil {
		return err
	}
	return runMigrations(ctx, db, all)
}

func runMigrations(ctx context.Context, db *gorm.DB, all []Migration) error {
	if err := db.WithContext(ctx).AutoMigrate(&SchemaVersion{}); err != nil {
		return fmt.Errorf("ensure schema_versions: %w", err)
	}
	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return err
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, m := range all {
		if done[m.Version] {
			continue
		}
		middleware.Logger.InfoContext(ctx, "Applying migration", slog.String("migration", m.String()))
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(m.Up).Error; err != nil {
				return fmt.Errorf("apply %s: %w", m, err)
			}
			record := SchemaVersion{
				Version: m.Version,
				Name:    m.Name,
				Tables:  strings.Join(presentTables(ctx, tx), ","),
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("record %s: %w", m, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if missing := MissingTables(ctx, db); len(missing) > 0 {
		return fmt.Errorf("portfolio tables missing after migrations: %s", strings.Join(missing, ", "))
	}
	return nil
}

// RollbackMigration reverts version, which must be the latest applied migration.
func RollbackMigration(ctx context.Context, db *gorm.DB, version int) error {
	all, err := Migrations()
	if err != nil {
		return err
	}
	return rollbackMigration(ctx, db, all, version)
}

func rollbackMigration(ctx context.Context, db *gorm.DB, all []Migration, version int) error {
	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return err
	}
	if len(applied) == 0 || applied[len(applied)-1] != version {
		return fmt.Errorf("migration %06d is not the latest applied (applied: %v)", version, applied)
	}

	var target *Migration
	for i := range all {
		if all[i].Version == version {
			target = &all[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration %06d is not known to this build", version)
	}

	middleware.Logger.InfoContext(ctx, "Rolling back migration", slog.String("migration", target.String()))
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(target.Down).Error; err != nil {
			return fmt.Errorf("roll back %s: %w", target, err)
		}
		return tx.Where("version = ?", version).Delete(&SchemaVersion{}).Error
	})
}
