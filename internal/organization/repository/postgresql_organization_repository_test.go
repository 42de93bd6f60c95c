package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentguard/blacklist/internal/organization/domain"
)

func newMockRepo(t *testing.T) (*PostgreSQLOrganizationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLOrganizationRepository(db), mock
}

func TestPostgreSQLOrganizationRepository_Create(t *testing.T) {
	t.Run("assigns serial id", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`INSERT INTO organizations`).
			WithArgs("Acme Rentals", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		org, err := domain.NewOrganization("Acme Rentals")
		require.NoError(t, err)

		err = repo.Create(context.Background(), org)
		require.NoError(t, err)
		assert.Equal(t, int64(7), org.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to conflict", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`INSERT INTO organizations`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "organizations_name_key"`))

		org, err := domain.NewOrganization("Acme Rentals")
		require.NoError(t, err)

		err = repo.Create(context.Background(), org)
		assert.ErrorIs(t, err, domain.ErrOrganizationExists)
	})
}

func TestPostgreSQLOrganizationRepository_GetByID(t *testing.T) {
	columns := []string{"id", "name", "hash_salt", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now().UTC()

		mock.ExpectQuery(`SELECT .+ FROM organizations WHERE id`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(7), "Acme Rentals", "abc", now, now))

		org, err := repo.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "Acme Rentals", org.Name)
		assert.Equal(t, "abc", org.HashSalt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM organizations WHERE id`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})
}

func TestPostgreSQLOrganizationRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT .+ FROM organizations ORDER BY id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "hash_salt", "created_at", "updated_at"}).
			AddRow(int64(1), "Acme Rentals", "salt1", now, now).
			AddRow(int64(2), "Globex Housing", "salt2", now, now))

	orgs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, int64(1), orgs[0].ID)
	assert.Equal(t, int64(2), orgs[1].ID)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(errors.New("pq: duplicate key value violates unique constraint")))
	assert.True(t, isUniqueViolation(errors.New("Error 1062: Duplicate entry 'x' for key 'name'")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(nil))
}
