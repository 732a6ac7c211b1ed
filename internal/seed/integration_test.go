//go:build integration

package seed

import (
	"context"
	"net/url"
	"os"
	"strings"
	"testing"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/models"
)

func parseDatabaseURLToConfig(dsn string) (*config.Config, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	password := ""
	if u.User != nil {
		password, _ = u.User.Password()
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	dbname := strings.TrimPrefix(u.Path, "/")
	cfg := &config.Config{
		DBDriver:     config.DriverPostgres,
		DBHost:       host,
		DBPort:       port,
		DBUser:       u.User.Username(),
		DBPassword:   password,
		DBName:       dbname,
		DBSSLMode:    "disable",
		Env:          "test",
		DBSchemaMode: "auto",
	}
	return cfg, nil
}

func TestIntegration_SeedDemoPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration seed test")
	}
	cfg, err := parseDatabaseURLToConfig(dsn)
	if err != nil {
		t.Fatalf("failed parse dsn: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()
	s := NewSeeder(db)
	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := s.SeedDemo(ctx, DemoOptions{Skills: 3, Projects: 2, Hobbies: 1, Experiences: 2, Contacts: 2, Seed: 7}); err != nil {
		t.Fatalf("SeedDemo failed: %v", err)
	}

	// The sequence must have moved past the explicit profile id.
	skill := models.Skill{Name: "after-seed", Proficiency: new(int)}
	if err := db.Create(&skill).Error; err != nil {
		t.Fatalf("insert after seed: %v", err)
	}
	if skill.ID <= 3 {
		t.Fatalf("expected a fresh id past the seeded rows, got %d", skill.ID)
	}
}
