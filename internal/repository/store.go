// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"folio/internal/database"
	"folio/internal/middleware"
	"folio/internal/models"
	"folio/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Gateway is the persistence contract shared by every entity.
type Gateway[T any] interface {
	// FindAll returns every row in id order.
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns nil, nil when no row has the id.
	FindByID(ctx context.Context, id uint) (*T, error)
	// Save inserts when the id is zero and otherwise updates in place. An id
	// with no row behind it is inserted under a fresh id, except on a store
	// with a pinned id. The id is set on return.
	Save(ctx context.Context, item *T) error
}

// store implements Gateway for one table.
type store[T any] struct {
	db      *gorm.DB
	table   string
	metrics *observability.DatabaseMetrics
	schemas *sync.Map
	// pinned stores keep a caller-chosen id when the row is missing.
	pinned bool
}

func newStore[T any](db *gorm.DB, table string) store[T] {
	return store[T]{
		db:      db,
		table:   table,
		metrics: observability.NewDatabaseMetrics(table),
		schemas: &sync.Map{},
	}
}

func (s *store[T]) readDB() *gorm.DB {
	if replica := database.ReadReplica(); replica != nil {
		return replica
	}
	return s.db
}

func (s *store[T]) begin(ctx context.Context, operation string) (*observability.Span, context.Context, func()) {
	span, ctx := observability.StartRepositorySpan(ctx, s.db.Dialector.Name(), s.table, operation)
	return span, ctx, s.metrics.TrackQuery(operation)
}

// list runs a read query; scope narrows or orders it.
func (s *store[T]) list(ctx context.Context, operation string, scope func(*gorm.DB) *gorm.DB) ([]T, error) {
	span, ctx, done := s.begin(ctx, operation)
	defer span.End()
	defer done()

	items := make([]T, 0)
	if err := scope(s.readDB().WithContext(ctx)).Find(&items).Error; err != nil {
		return nil, s.fail(ctx, span, operation, err)
	}
	return items, nil
}

func (s *store[T]) FindAll(ctx context.Context) ([]T, error) {
	return s.list(ctx, "find_all", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func (s *store[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	span, ctx, done := s.begin(ctx, "find_by_id")
	defer span.End()
	defer done()

	var item T
	if err := s.readDB().WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, s.fail(ctx, span, "find_by_id", err)
	}
	return &item, nil
}

func (s *store[T]) Save(ctx context.Context, item *T) error {
	span, ctx, done := s.begin(ctx, "save")
	defer span.End()
	defer done()

	pk, row, err := s.primaryKey(item)
	if err != nil {
		return s.fail(ctx, span, "save", err)
	}
	db := s.db.WithContext(ctx)

	explicitID := false
	if _, zero := pk.ValueOf(ctx, row); !zero {
		res := db.Model(item).Select("*").Updates(item)
		if res.Error != nil {
			return s.fail(ctx, span, "save", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
		if s.pinned {
			explicitID = true
		} else if err := pk.Set(ctx, row, 0); err != nil {
			return s.fail(ctx, span, "save", err)
		}
	}

	if err := db.Create(item).Error; err != nil {
		return s.fail(ctx, span, "save", err)
	}
	if explicitID {
		if err := database.ResyncSequence(ctx, s.db, s.table); err != nil {
			return s.fail(ctx, span, "save", err)
		}
	}
	return nil
}

// primaryKey returns the id field of T and the addressable value of item.
func (s *store[T]) primaryKey(item *T) (*schema.Field, reflect.Value, error) {
	sch, err := schema.Parse(item, s.schemas, s.db.NamingStrategy)
	if err != nil {
		return nil, reflect.Value{}, err
	}
	if sch.PrioritizedPrimaryField == nil {
		return nil, reflect.Value{}, errors.New("no primary key on " + sch.Name)
	}
	return sch.PrioritizedPrimaryField, reflect.ValueOf(item).Elem(), nil
}

func (s *store[T]) fail(ctx context.Context, span *observability.Span, operation string, err error) error {
	span.SetError(err)
	s.metrics.RecordError(operation)

	attrs := []any{
		slog.String("table", s.table),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}
	if kind := constraintViolation(err); kind != "" {
		attrs = append(attrs, slog.String("violation", kind))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		attrs = append(attrs, slog.String("sqlstate", pgErr.Code))
		if pgErr.ConstraintName != "" {
			attrs = append(attrs, slog.String("constraint", pgErr.ConstraintName))
		}
		if pgErr.ColumnName != "" {
			attrs = append(attrs, slog.String("column", pgErr.ColumnName))
		}
	}
	middleware.Logger.ErrorContext(ctx, "repository error", attrs...)

	return models.NewInternalError(err)
}

// Constraint violation kinds reported by constraintViolation.
const (
	ViolationNotNull = "not_null"
	ViolationCheck   = "check"
	ViolationUnique  = "unique"
)

// constraintViolation classifies integrity errors from either engine. It returns
// "" for anything else.
func constraintViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502":
			return ViolationNotNull
		case "23514":
			return ViolationCheck
		case "23505":
			return ViolationUnique
		}
		return ""
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return ViolationNotNull
	case strings.Contains(msg, "CHECK constraint failed"):
		return ViolationCheck
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ViolationUnique
	}
	return ""
}
