// Package repository provides data persistence implementations for the
// blacklist module: identities, entries and history events.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/database"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

const identityColumns = `id, organization_id, hash_salt, fio_hash, surname_hash,
	birthdate_hash, passport_hash, department_code_hash, phone_hash,
	phone_last10_hash, created_at, updated_at`

// PostgreSQLIdentityRepository handles identity persistence for PostgreSQL
type PostgreSQLIdentityRepository struct {
	db *sql.DB
}

// NewPostgreSQLIdentityRepository creates a new PostgreSQLIdentityRepository
func NewPostgreSQLIdentityRepository(db *sql.DB) *PostgreSQLIdentityRepository {
	return &PostgreSQLIdentityRepository{
		db: db,
	}
}

// Create inserts a new identity. Returns ErrIdentityExists when another
// identity with the same identity key already exists in the organization.
func (r *PostgreSQLIdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blacklist_identities
			  (id, organization_id, hash_salt, fio_hash, surname_hash, birthdate_hash,
			   passport_hash, department_code_hash, phone_hash, phone_last10_hash,
			   created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		identity.ID, identity.OrganizationID, identity.HashSalt,
		identity.FIOHash, identity.SurnameHash, identity.BirthdateHash,
		identity.PassportHash, identity.DepartmentCodeHash,
		identity.PhoneHash, identity.PhoneLast10Hash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrIdentityExists
		}
		return apperrors.Wrap(err, "failed to create identity")
	}
	return nil
}

// GetByID retrieves an identity by ID
func (r *PostgreSQLIdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities WHERE id = $1`

	identity, err := scanIdentity(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get identity by id")
	}

	return identity, nil
}

// FindByIdentityKey looks up the identity with the given key digests inside
// one organization. Returns ErrIdentityNotFound when no such identity exists.
func (r *PostgreSQLIdentityRepository) FindByIdentityKey(ctx context.Context, organizationID int64, fioHash, birthdateHash, passportHash string) (*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities
			  WHERE organization_id = $1 AND fio_hash = $2 AND birthdate_hash = $3 AND passport_hash = $4`

	identity, err := scanIdentity(querier.QueryRowContext(ctx, query, organizationID, fioHash, birthdateHash, passportHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, apperrors.Wrap(err, "failed to find identity by key")
	}

	return identity, nil
}

// FindByPassportDigest returns the identities within one organization whose
// passport digest equals the given value, oldest first.
func (r *PostgreSQLIdentityRepository) FindByPassportDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "passport_hash", organizationID, digest)
}

// FindBySurnameDigest returns the identities within one organization whose
// surname digest equals the given value, oldest first.
func (r *PostgreSQLIdentityRepository) FindBySurnameDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "surname_hash", organizationID, digest)
}

// FindByPhoneDigest returns the identities within one organization whose
// phone digest equals the given value, oldest first.
func (r *PostgreSQLIdentityRepository) FindByPhoneDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "phone_hash", organizationID, digest)
}

// FindByPhoneLast10Digest returns the identities within one organization
// whose subscriber-number digest equals the given value, oldest first.
func (r *PostgreSQLIdentityRepository) FindByPhoneLast10Digest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "phone_last10_hash", organizationID, digest)
}

func (r *PostgreSQLIdentityRepository) findByOrgDigest(ctx context.Context, column string, organizationID int64, digest string) ([]*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities
			  WHERE organization_id = $1 AND ` + column + ` = $2
			  ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, organizationID, digest)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find identities by digest")
	}
	defer rows.Close()

	return scanIdentities(rows)
}

// FindByPassportDigestGlobal returns every identity, regardless of
// organization, whose passport digest equals the given value, oldest first.
func (r *PostgreSQLIdentityRepository) FindByPassportDigestGlobal(ctx context.Context, digest string) ([]*domain.Identity, error) {
	return r.findByGlobalDigest(ctx, "passport_hash", digest)
}

// FindByFIODigestGlobal returns every identity, regardless of organization,
// whose full name digest equals the given value, oldest first.
func (r *PostgreSQLIdentityRepository) FindByFIODigestGlobal(ctx context.Context, digest string) ([]*domain.Identity, error) {
	return r.findByGlobalDigest(ctx, "fio_hash", digest)
}

func (r *PostgreSQLIdentityRepository) findByGlobalDigest(ctx context.Context, column string, digest string) ([]*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities
			  WHERE ` + column + ` = $1
			  ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, digest)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find identities by digest")
	}
	defer rows.Close()

	return scanIdentities(rows)
}

// DistinctSalts returns the distinct hash salts present in storage, sorted.
// Searching recomputes criteria digests once per salt, so this bounds the
// work by the number of salts actually in use rather than by organizations.
func (r *PostgreSQLIdentityRepository) DistinctSalts(ctx context.Context) ([]string, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT DISTINCT hash_salt FROM blacklist_identities ORDER BY hash_salt ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list distinct salts")
	}
	defer rows.Close()

	var salts []string
	for rows.Next() {
		var salt string
		if err := rows.Scan(&salt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan salt")
		}
		salts = append(salts, salt)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate salts")
	}

	return salts, nil
}

// Delete removes an identity. Administrative escape hatch; normal flows
// never delete identities.
func (r *PostgreSQLIdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM blacklist_identities WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete identity")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check deleted rows")
	}
	if affected == 0 {
		return domain.ErrIdentityNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (*domain.Identity, error) {
	var identity domain.Identity
	err := row.Scan(
		&identity.ID, &identity.OrganizationID, &identity.HashSalt,
		&identity.FIOHash, &identity.SurnameHash, &identity.BirthdateHash,
		&identity.PassportHash, &identity.DepartmentCodeHash,
		&identity.PhoneHash, &identity.PhoneLast10Hash,
		&identity.Created, &identity.Updated,
	)
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func scanIdentities(rows *sql.Rows) ([]*domain.Identity, error) {
	var identities []*domain.Identity
	for rows.Next() {
		identity, err := scanIdentity(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan identity")
		}
		identities = append(identities, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate identities")
	}
	return identities, nil
}

// isUniqueViolation checks if the error is a unique constraint violation.
// Matches on message text so it works for both PostgreSQL and MySQL drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry")
}
