package database

import (
	"context"
	"testing"

	"folio/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Config
		wantSQL     bool
		wantAuto    bool
		expectError bool
	}{
		{"hybrid in development", config.Config{DBDriver: config.DriverPostgres, Env: "development"}, true, true, false},
		{"hybrid in production", config.Config{DBDriver: config.DriverPostgres, Env: "production", DBSchemaMode: "hybrid"}, true, false, false},
		{"sql only", config.Config{DBDriver: config.DriverPostgres, Env: "development", DBSchemaMode: "sql"}, true, false, false},
		{"auto in development", config.Config{DBDriver: config.DriverPostgres, Env: "development", DBSchemaMode: "auto"}, false, true, false},
		{"auto in staging refused", config.Config{DBDriver: config.DriverPostgres, Env: "staging", DBSchemaMode: "auto"}, false, false, true},
		{"auto in staging allowed", config.Config{DBDriver: config.DriverPostgres, Env: "staging", DBSchemaMode: "auto", DBAutoMigrateAllowDestructive: true}, false, true, false},
		{"sqlite always auto", config.Config{DBDriver: config.DriverSQLite, Env: "production", DBSchemaMode: "sql"}, false, true, false},
		{"unknown mode", config.Config{DBDriver: config.DriverPostgres, DBSchemaMode: "yolo"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runSQL, runAuto, err := schemaPolicy(&tt.cfg)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestGetSchemaStatusSQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	cfg := &config.Config{DBDriver: config.DriverSQLite, Env: "development"}

	status, err := GetSchemaStatus(ctx, db, cfg)
	require.NoError(t, err)
	assert.Equal(t, SchemaModeHybrid, status.Mode)
	assert.False(t, status.WillRunSQL)
	assert.True(t, status.WillRunAutoMigrate)
	assert.Empty(t, status.PendingMigrations)
	assert.Equal(t, PortfolioTables(), status.MissingTables)

	require.NoError(t, ApplySchema(ctx, db, cfg))
	status, err = GetSchemaStatus(ctx, db, cfg)
	require.NoError(t, err)
	assert.Empty(t, status.MissingTables)
}

func TestSQLMigrationCommandsRefuseSQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()
	cfg := &config.Config{DBDriver: config.DriverSQLite, Env: "development", DBSchemaMode: SchemaModeSQL}

	assert.ErrorIs(t, MigrateUp(ctx, db, cfg), ErrSQLMigrationsUnsupported)
	assert.ErrorIs(t, MigrateDown(ctx, db, cfg, 1), ErrSQLMigrationsUnsupported)
	assert.False(t, db.Migrator().HasTable(&SchemaVersion{}), "a refused command writes nothing")
}
