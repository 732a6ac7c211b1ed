// Package bootstrap wires the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/middleware"
	"folio/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedFile is a YAML portfolio fixture applied after connecting. Empty skips seeding.
	SeedFile string
}

// InitRuntime connects to DB and Redis and optionally seeds portfolio content.
// The returned redis client is nil when REDIS_URL is empty or unreachable.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := seedFromFile(context.Background(), db, opts.SeedFile); err != nil {
		return nil, nil, err
	}

	return db, r, nil
}

func seedFromFile(ctx context.Context, db *gorm.DB, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		// Sequences can still lag behind rows the API wrote with explicit ids.
		if err := seed.ResyncSequences(ctx, db); err != nil {
			return fmt.Errorf("failed to resync id sequences: %w", err)
		}
		return nil
	}

	sum, err := seed.NewSeeder(db).LoadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to seed from %s: %w", path, err)
	}
	middleware.Logger.Info("Seed file applied",
		slog.String("file", path),
		slog.String("summary", sum.String()),
	)
	return nil
}
