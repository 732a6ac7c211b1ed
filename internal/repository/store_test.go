package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"folio/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAssignsIDThenUpdatesInPlace(t *testing.T) {
	repo := NewSkillRepository(setupTestDB(t))
	ctx := context.Background()

	skill := &models.Skill{Name: "Go", Category: "Backend", Proficiency: intPtr(80)}
	require.NoError(t, repo.Save(ctx, skill))
	require.NotZero(t, skill.ID)
	firstID := skill.ID

	other := &models.Skill{Name: "SQL", Category: "Backend", Proficiency: intPtr(70)}
	require.NoError(t, repo.Save(ctx, other))
	assert.NotEqual(t, firstID, other.ID)

	skill.Proficiency = intPtr(95)
	require.NoError(t, repo.Save(ctx, skill))
	assert.Equal(t, firstID, skill.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 95, *all[0].Proficiency)
}

func TestStore_SaveWithUnknownIDTakesFreshID(t *testing.T) {
	repo := NewHobbyRepository(setupTestDB(t))
	ctx := context.Background()

	hobby := &models.Hobby{ID: 42, Name: "Climbing"}
	require.NoError(t, repo.Save(ctx, hobby))
	assert.NotZero(t, hobby.ID)
	assert.NotEqual(t, uint(42), hobby.ID)

	missing, err := repo.FindByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)

	next := &models.Hobby{Name: "Chess"}
	require.NoError(t, repo.Save(ctx, next))
	assert.NotEqual(t, hobby.ID, next.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_ProfileKeepsPinnedIDWhenMissing(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))
	ctx := context.Background()

	profile := &models.Profile{ID: models.ProfileID, FullName: "Jane Doe"}
	require.NoError(t, repo.Save(ctx, profile))
	assert.Equal(t, models.ProfileID, profile.ID)

	found, err := repo.FindByID(ctx, models.ProfileID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Jane Doe", found.FullName)
}

func TestStore_SaveUnknownIDOnPostgresLetsSequenceAssign(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSkillRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "skill" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "skill" ("name","category","icon_url","proficiency","description") VALUES ($1,$2,$3,$4,$5) RETURNING "id"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	skill := &models.Skill{ID: 500, Name: "Go", Category: "Backend", Proficiency: intPtr(80)}
	require.NoError(t, repo.Save(context.Background(), skill))
	assert.Equal(t, uint(7), skill.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SaveExistingIDOnPostgresOnlyUpdates(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSkillRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "skill" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	skill := &models.Skill{ID: 3, Name: "Go", Category: "Backend", Proficiency: intPtr(90)}
	require.NoError(t, repo.Save(context.Background(), skill))
	assert.Equal(t, uint(3), skill.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_PinnedInsertOnPostgresResyncsSequence(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "profile" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "profile"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()
	mock.ExpectExec(regexp.QuoteMeta(`pg_get_serial_sequence('profile', 'id')`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	profile := &models.Profile{ID: models.ProfileID, FullName: "Jane Doe"}
	require.NoError(t, repo.Save(context.Background(), profile))
	assert.Equal(t, models.ProfileID, profile.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByIDAbsent(t *testing.T) {
	repo := NewProfileRepository(setupTestDB(t))

	found, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestStore_ListsAreNeverNil(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	hobbies, err := NewHobbyRepository(db).FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hobbies)
	assert.Empty(t, hobbies)

	skills, err := NewSkillRepository(db).FindByCategory(ctx, "Nothing")
	require.NoError(t, err)
	assert.NotNil(t, skills)
	assert.Empty(t, skills)
}

func TestStore_ConstraintViolationsAreInternalErrors(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name string
		save func() error
	}{
		{"skill without proficiency", func() error {
			return NewSkillRepository(db).Save(ctx, &models.Skill{Name: "Go"})
		}},
		{"profile without full name", func() error {
			return NewProfileRepository(db).Save(ctx, &models.Profile{ID: models.ProfileID, Title: "Engineer"})
		}},
		{"contact without message", func() error {
			return NewContactRepository(db).Save(ctx, &models.Contact{Name: "Ann", Email: "ann@x.com"})
		}},
		{"experience without company", func() error {
			return NewExperienceRepository(db).Save(ctx, &models.Experience{Title: "Engineer"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.save()
			require.Error(t, err)
			assert.True(t, models.IsCode(err, models.CodeInternal))
		})
	}
}

func TestStore_QueryErrorIsWrapped(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHobbyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "hobby" ORDER BY id`)).
		WillReturnError(errors.New("connection reset"))

	hobbies, err := repo.FindAll(context.Background())
	assert.Nil(t, hobbies)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeInternal))
	assert.ErrorContains(t, err, "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByIDQueryShape(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewProfileRepository(db)

	rows := sqlmock.NewRows([]string{"id", "full_name", "title"}).AddRow(1, "Jane Doe", "Engineer")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "profile" WHERE "profile"."id" = $1 ORDER BY "profile"."id" LIMIT $2`)).
		WithArgs(1, 1).
		WillReturnRows(rows)

	profile, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"postgres not null", &pgconn.PgError{Code: "23502"}, ViolationNotNull},
		{"postgres check", &pgconn.PgError{Code: "23514", ConstraintName: "chk_skill_name"}, ViolationCheck},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, ViolationUnique},
		{"postgres other", &pgconn.PgError{Code: "08006"}, ""},
		{"sqlite not null", errors.New("NOT NULL constraint failed: skill.proficiency"), ViolationNotNull},
		{"sqlite check", errors.New("CHECK constraint failed: chk_profile_full_name"), ViolationCheck},
		{"plain error", errors.New("timeout"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, constraintViolation(tt.err))
		})
	}
}
