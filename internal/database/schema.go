package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"folio/internal/config"
	"folio/internal/middleware"

	"gorm.io/gorm"
)

// Schema modes accepted by DB_SCHEMA_MODE.
const (
	SchemaModeHybrid = "hybrid"
	SchemaModeSQL    = "sql"
	SchemaModeAuto   = "auto"
)

// ErrSQLMigrationsUnsupported is returned for SQL migration commands against
// SQLite. The embedded scripts are PostgreSQL; SQLite schemas come from AutoMigrate.
var ErrSQLMigrationsUnsupported = errors.New("sql migrations are written for postgres; use auto with DB_DRIVER=sqlite")

// SchemaStatus describes what ApplySchema would do, which SQL migrations are
// pending and which portfolio tables do not exist yet.
type SchemaStatus struct {
	Mode               string
	Environment        string
	WillRunSQL         bool
	WillRunAutoMigrate bool
	AppliedVersions    []int
	PendingMigrations  []Migration
	MissingTables      []string
}

func sqlMigrationsSupported(cfg *config.Config) error {
	if cfg.DBDriver == config.DriverSQLite {
		return ErrSQLMigrationsUnsupported
	}
	return nil
}

func isProdLikeEnv(env string) bool {
	e := strings.ToLower(strings.TrimSpace(env))
	return e == "production" || e == "prod" || e == "staging" || e == "stage"
}

func normalizedSchemaMode(cfg *config.Config) string {
	mode := strings.ToLower(strings.TrimSpace(cfg.DBSchemaMode))
	if mode == "" {
		return SchemaModeHybrid
	}
	return mode
}

func schemaPolicy(cfg *config.Config) (runSQL bool, runAuto bool, err error) {
	mode := normalizedSchemaMode(cfg)
	prodLike := isProdLikeEnv(cfg.Env)

	if sqlMigrationsSupported(cfg) != nil {
		return false, true, nil
	}

	switch mode {
	case SchemaModeSQL:
		return true, false, nil
	case SchemaModeAuto:
		if prodLike && !cfg.DBAutoMigrateAllowDestructive {
			return false, false, fmt.Errorf("refusing DB_SCHEMA_MODE=auto in %q without DB_AUTOMIGRATE_ALLOW_DESTRUCTIVE=true", cfg.Env)
		}
		return false, true, nil
	case SchemaModeHybrid:
		return true, !prodLike, nil
	default:
		return false, false, fmt.Errorf("unsupported DB_SCHEMA_MODE %q", mode)
	}
}

func runAutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return err
	}
	if missing := MissingTables(ctx, db); len(missing) > 0 {
		return fmt.Errorf("portfolio tables missing after auto-migrate: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ApplySchema brings the schema up to date according to DB_SCHEMA_MODE.
func ApplySchema(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	runSQL, runAuto, err := schemaPolicy(cfg)
	if err != nil {
		return err
	}

	if runSQL {
		if err := RunMigrations(ctx, db); err != nil {
			return fmt.Errorf("run sql migrations: %w", err)
		}
	}

	if runAuto {
		mode := normalizedSchemaMode(cfg)
		if mode == SchemaModeAuto && cfg.DBAutoMigrateAllowDestructive {
			middleware.Logger.WarnContext(ctx, "DB_AUTOMIGRATE_ALLOW_DESTRUCTIVE=true set for DB_SCHEMA_MODE=auto; review schema diffs before production deployment")
		}
		middleware.Logger.InfoContext(ctx, "Running GORM AutoMigrate", slog.String("mode", mode), slog.String("env", cfg.Env))
		if err := runAutoMigrate(ctx, db); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return nil
}

// MigrateUp applies pending SQL migrations regardless of DB_SCHEMA_MODE.
func MigrateUp(ctx context.Context, db *gorm.DB, cfg *config.Config) error {
	if err := sqlMigrationsSupported(cfg); err != nil {
		return err
	}
	return RunMigrations(ctx, db)
}

// MigrateDown reverts the latest applied SQL migration, which must be version.
func MigrateDown(ctx context.Context, db *gorm.DB, cfg *config.Config, version int) error {
	if err := sqlMigrationsSupported(cfg); err != nil {
		return err
	}
	return RollbackMigration(ctx, db, version)
}

// GetSchemaStatus reports the schema policy, pending migrations and missing
// portfolio tables without changing anything.
func GetSchemaStatus(ctx context.Context, db *gorm.DB, cfg *config.Config) (*SchemaStatus, error) {
	runSQL, runAuto, err := schemaPolicy(cfg)
	if err != nil {
		return nil, err
	}

	status := &SchemaStatus{
		Mode:               normalizedSchemaMode(cfg),
		Environment:        cfg.Env,
		WillRunSQL:         runSQL,
		WillRunAutoMigrate: runAuto,
		MissingTables:      MissingTables(ctx, db),
	}

	if !runSQL {
		return status, nil
	}

	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}
	status.AppliedVersions = applied

	all, err := Migrations()
	if err != nil {
		return nil, err
	}
	done := make(map[int]bool, len(applied))
	for _, version := range applied {
		done[version] = true
	}
	for _, m := range all {
		if !done[m.Version] {
			status.PendingMigrations = append(status.PendingMigrations, m)
		}
	}

	return status, nil
}
