package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
)

var identityTestColumns = []string{
	"id", "organization_id", "hash_salt", "fio_hash", "surname_hash",
	"birthdate_hash", "passport_hash", "department_code_hash", "phone_hash",
	"phone_last10_hash", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (sqlmock.Sqlmock, *PostgreSQLIdentityRepository) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return mock, NewPostgreSQLIdentityRepository(db)
}

func addIdentityRow(rows *sqlmock.Rows, identity *domain.Identity) *sqlmock.Rows {
	return rows.AddRow(
		identity.ID, identity.OrganizationID, identity.HashSalt,
		identity.FIOHash, identity.SurnameHash, identity.BirthdateHash,
		identity.PassportHash, identity.DepartmentCodeHash,
		identity.PhoneHash, identity.PhoneLast10Hash,
		identity.Created, identity.Updated,
	)
}

func testIdentity(orgID int64) *domain.Identity {
	identity := domain.NewIdentity(orgID, "salt", domain.PersonDigests{
		FIO:            "fio-digest",
		Surname:        "surname-digest",
		Birthdate:      "birthdate-digest",
		Passport:       "passport-digest",
		DepartmentCode: "dept-digest",
		Phone:          "phone-digest",
		PhoneLast10:    "phone10-digest",
	})
	identity.Created = time.Now().UTC()
	identity.Updated = identity.Created
	return identity
}

func TestPostgreSQLIdentityRepository_Create(t *testing.T) {
	t.Run("inserts identity", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectExec(`INSERT INTO blacklist_identities`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), testIdentity(1))
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to identity exists", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectExec(`INSERT INTO blacklist_identities`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "blacklist_identities_identity_key"`))

		err := repo.Create(context.Background(), testIdentity(1))
		assert.ErrorIs(t, err, domain.ErrIdentityExists)
	})
}

func TestPostgreSQLIdentityRepository_FindByIdentityKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock, repo := newMockDB(t)
		identity := testIdentity(1)

		mock.ExpectQuery(`SELECT .+ FROM blacklist_identities\s+WHERE organization_id = \$1 AND fio_hash = \$2`).
			WithArgs(int64(1), "fio-digest", "birthdate-digest", "passport-digest").
			WillReturnRows(addIdentityRow(sqlmock.NewRows(identityTestColumns), identity))

		got, err := repo.FindByIdentityKey(context.Background(), 1, "fio-digest", "birthdate-digest", "passport-digest")
		require.NoError(t, err)
		assert.Equal(t, identity.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock, repo := newMockDB(t)

		mock.ExpectQuery(`SELECT .+ FROM blacklist_identities`).
			WillReturnRows(sqlmock.NewRows(identityTestColumns))

		_, err := repo.FindByIdentityKey(context.Background(), 1, "a", "b", "c")
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}

func TestPostgreSQLIdentityRepository_FindByPassportDigest(t *testing.T) {
	mock, repo := newMockDB(t)
	identity := testIdentity(1)

	mock.ExpectQuery(`SELECT .+ FROM blacklist_identities\s+WHERE organization_id = \$1 AND passport_hash = \$2`).
		WithArgs(int64(1), "passport-digest").
		WillReturnRows(addIdentityRow(sqlmock.NewRows(identityTestColumns), identity))

	got, err := repo.FindByPassportDigest(context.Background(), 1, "passport-digest")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, identity.PassportHash, got[0].PassportHash)
}

func TestPostgreSQLIdentityRepository_FindByPassportDigestGlobal(t *testing.T) {
	mock, repo := newMockDB(t)
	identity1 := testIdentity(1)
	identity2 := testIdentity(2)

	rows := sqlmock.NewRows(identityTestColumns)
	addIdentityRow(rows, identity1)
	addIdentityRow(rows, identity2)

	mock.ExpectQuery(`SELECT .+ FROM blacklist_identities\s+WHERE passport_hash = \$1`).
		WithArgs("passport-digest").
		WillReturnRows(rows)

	got, err := repo.FindByPassportDigestGlobal(context.Background(), "passport-digest")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].OrganizationID)
	assert.Equal(t, int64(2), got[1].OrganizationID)
}

func TestPostgreSQLIdentityRepository_DistinctSalts(t *testing.T) {
	mock, repo := newMockDB(t)

	mock.ExpectQuery(`SELECT DISTINCT hash_salt FROM blacklist_identities`).
		WillReturnRows(sqlmock.NewRows([]string{"hash_salt"}).AddRow("salt-a").AddRow("salt-b"))

	salts, err := repo.DistinctSalts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"salt-a", "salt-b"}, salts)
}

func TestPostgreSQLIdentityRepository_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		mock, repo := newMockDB(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`DELETE FROM blacklist_identities WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), id))
	})

	t.Run("missing identity", func(t *testing.T) {
		mock, repo := newMockDB(t)
		id := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`DELETE FROM blacklist_identities WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), id), domain.ErrIdentityNotFound)
	})
}
