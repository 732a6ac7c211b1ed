package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"folio/internal/config"
	"folio/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testIndexHTML = "<!doctype html><title>portfolio</title><div id=\"root\"></div>"

type testServer struct {
	app    *fiber.App
	db     *gorm.DB
	config *config.Config
}

type testServerOption func(cfg *config.Config, rdb **redis.Client)

func withRedis(rdb *redis.Client) testServerOption {
	return func(_ *config.Config, target **redis.Client) { *target = rdb }
}

func withConfig(mutate func(cfg *config.Config)) testServerOption {
	return func(cfg *config.Config, _ **redis.Client) { mutate(cfg) }
}

// newTestServer wires a full app over a private SQLite file and a static
// directory holding a tiny frontend build.
func newTestServer(t *testing.T, opts ...testServerOption) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "folio.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte(testIndexHTML), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(staticDir, "assets"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "assets", "app.js"), []byte("console.log('app')"), 0o600))

	cfg := &config.Config{
		Port:                     "0",
		Env:                      "test",
		AllowedOrigins:           "*",
		StaticDir:                staticDir,
		ContactRateLimit:         5,
		ContactRateWindowMinutes: 10,
	}
	var rdb *redis.Client
	for _, opt := range opts {
		opt(cfg, &rdb)
	}

	srv, err := NewServerWithDeps(cfg, db, rdb)
	require.NoError(t, err)

	return &testServer{app: srv.NewApp(), db: db, config: cfg}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

// closeDB makes every later query fail.
func (ts *testServer) closeDB(t *testing.T) {
	t.Helper()
	sqlDB, err := ts.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
