// Package seed provides database seeding utilities for development and demos.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"folio/internal/database"
	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/repository"
	"folio/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture is the content of a portfolio seed file. Field names match the
// JSON accepted by the API.
type Fixture struct {
	Profile     *models.Profile     `json:"profile"`
	Skills      []models.Skill      `json:"skills"`
	Projects    []models.Project    `json:"projects"`
	Hobbies     []models.Hobby      `json:"hobbies"`
	Experiences []models.Experience `json:"experiences"`
	Contacts    []models.Contact    `json:"contacts"`
}

// Summary counts the records written by one seeding run.
type Summary struct {
	Profile     bool
	Skills      int
	Projects    int
	Hobbies     int
	Experiences int
	Contacts    int
}

func (s Summary) String() string {
	return fmt.Sprintf("profile=%t skills=%d projects=%d hobbies=%d experiences=%d contacts=%d",
		s.Profile, s.Skills, s.Projects, s.Hobbies, s.Experiences, s.Contacts)
}

// Seeder writes portfolio content through the PortfolioService, so seeded rows
// get the same upsert semantics as API writes.
type Seeder struct {
	db        *gorm.DB
	portfolio *service.PortfolioService
}

// NewSeeder creates a Seeder bound to db.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db: db,
		portfolio: service.NewPortfolioService(service.Repositories{
			Profiles:    repository.NewProfileRepository(db),
			Skills:      repository.NewSkillRepository(db),
			Projects:    repository.NewProjectRepository(db),
			Hobbies:     repository.NewHobbyRepository(db),
			Experiences: repository.NewExperienceRepository(db),
			Contacts:    repository.NewContactRepository(db),
		}),
	}
}

// ParseFixture decodes a YAML fixture. YAML is converted to JSON first so the
// models' JSON field names and Date parsing apply unchanged.
func ParseFixture(r io.Reader) (*Fixture, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return &Fixture{}, nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	payload, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("convert fixture: %w", err)
	}

	var fixture Fixture
	if err := json.Unmarshal(payload, &fixture); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &fixture, nil
}

// normalizeYAML turns the map[string]any / []any tree yaml.v3 produces into
// something encoding/json can marshal. Non-string keys are stringified.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

// LoadFile parses the YAML file at path and applies it.
func (s *Seeder) LoadFile(ctx context.Context, path string) (Summary, error) {
	f, err := os.Open(path) // #nosec G304: path comes from operator config
	if err != nil {
		return Summary{}, fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fixture, err := ParseFixture(f)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	return s.Apply(ctx, fixture)
}

// Apply saves every record of the fixture. It stops at the first failure and
// reports what had been written until then.
func (s *Seeder) Apply(ctx context.Context, fixture *Fixture) (Summary, error) {
	var sum Summary

	if fixture.Profile != nil {
		if _, err := s.portfolio.SaveProfile(ctx, fixture.Profile); err != nil {
			return sum, fmt.Errorf("seed profile: %w", err)
		}
		sum.Profile = true
	}
	for i := range fixture.Skills {
		if _, err := s.portfolio.SaveSkill(ctx, &fixture.Skills[i]); err != nil {
			return sum, fmt.Errorf("seed skill %q: %w", fixture.Skills[i].Name, err)
		}
		sum.Skills++
	}
	for i := range fixture.Projects {
		if _, err := s.portfolio.SaveProject(ctx, &fixture.Projects[i]); err != nil {
			return sum, fmt.Errorf("seed project %q: %w", fixture.Projects[i].Name, err)
		}
		sum.Projects++
	}
	for i := range fixture.Hobbies {
		if _, err := s.portfolio.SaveHobby(ctx, &fixture.Hobbies[i]); err != nil {
			return sum, fmt.Errorf("seed hobby %q: %w", fixture.Hobbies[i].Name, err)
		}
		sum.Hobbies++
	}
	for i := range fixture.Experiences {
		if _, err := s.portfolio.SaveExperience(ctx, &fixture.Experiences[i]); err != nil {
			return sum, fmt.Errorf("seed experience %q: %w", fixture.Experiences[i].Title, err)
		}
		sum.Experiences++
	}
	for i := range fixture.Contacts {
		if fixture.Contacts[i].CreatedAt == nil {
			now := time.Now().UTC()
			fixture.Contacts[i].CreatedAt = &now
		}
		if _, err := s.portfolio.SaveContact(ctx, &fixture.Contacts[i]); err != nil {
			return sum, fmt.Errorf("seed contact from %q: %w", fixture.Contacts[i].Email, err)
		}
		sum.Contacts++
	}

	if err := ResyncSequences(ctx, s.db); err != nil {
		return sum, err
	}

	middleware.Logger.InfoContext(ctx, "Portfolio content seeded", slog.String("summary", sum.String()))
	return sum, nil
}

// ClearAll removes every portfolio row. On postgres identities restart at 1.
func (s *Seeder) ClearAll(ctx context.Context) error {
	tables := database.PortfolioTables()
	db := s.db.WithContext(ctx)

	if db.Dialector.Name() == "postgres" {
		sql := "TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY"
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("truncate portfolio tables: %w", err)
		}
	} else {
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, table := range tables {
				if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
					return fmt.Errorf("clear %s: %w", table, err)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	middleware.Logger.InfoContext(ctx, "Portfolio tables cleared", slog.Int("tables", len(tables)))
	return nil
}

// ResyncSequences moves each postgres id sequence past the largest stored id.
// Rows written with an explicit id (the profile always is) leave the sequence
// behind otherwise. Other dialects need nothing.
func ResyncSequences(ctx context.Context, db *gorm.DB) error {
	for _, table := range database.PortfolioTables() {
		if err := database.ResyncSequence(ctx, db, table); err != nil {
			return err
		}
	}
	return nil
}
