package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/database"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// MySQLIdentityRepository handles identity persistence for MySQL
type MySQLIdentityRepository struct {
	db *sql.DB
}

// NewMySQLIdentityRepository creates a new MySQLIdentityRepository
func NewMySQLIdentityRepository(db *sql.DB) *MySQLIdentityRepository {
	return &MySQLIdentityRepository{
		db: db,
	}
}

// Create inserts a new identity. Returns ErrIdentityExists when another
// identity with the same identity key already exists in the organization.
func (r *MySQLIdentityRepository) Create(ctx context.Context, identity *domain.Identity) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blacklist_identities
			  (id, organization_id, hash_salt, fio_hash, surname_hash, birthdate_hash,
			   passport_hash, department_code_hash, phone_hash, phone_last10_hash,
			   created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

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
func (r *MySQLIdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities WHERE id = ?`

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
func (r *MySQLIdentityRepository) FindByIdentityKey(ctx context.Context, organizationID int64, fioHash, birthdateHash, passportHash string) (*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities
			  WHERE organization_id = ? AND fio_hash = ? AND birthdate_hash = ? AND passport_hash = ?`

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
func (r *MySQLIdentityRepository) FindByPassportDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "passport_hash", organizationID, digest)
}

// FindBySurnameDigest returns the identities within one organization whose
// surname digest equals the given value, oldest first.
func (r *MySQLIdentityRepository) FindBySurnameDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "surname_hash", organizationID, digest)
}

// FindByPhoneDigest returns the identities within one organization whose
// phone digest equals the given value, oldest first.
func (r *MySQLIdentityRepository) FindByPhoneDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "phone_hash", organizationID, digest)
}

// FindByPhoneLast10Digest returns the identities within one organization
// whose subscriber-number digest equals the given value, oldest first.
func (r *MySQLIdentityRepository) FindByPhoneLast10Digest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error) {
	return r.findByOrgDigest(ctx, "phone_last10_hash", organizationID, digest)
}

func (r *MySQLIdentityRepository) findByOrgDigest(ctx context.Context, column string, organizationID int64, digest string) ([]*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities
			  WHERE organization_id = ? AND ` + column + ` = ?
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
func (r *MySQLIdentityRepository) FindByPassportDigestGlobal(ctx context.Context, digest string) ([]*domain.Identity, error) {
	return r.findByGlobalDigest(ctx, "passport_hash", digest)
}

// FindByFIODigestGlobal returns every identity, regardless of organization,
// whose full name digest equals the given value, oldest first.
func (r *MySQLIdentityRepository) FindByFIODigestGlobal(ctx context.Context, digest string) ([]*domain.Identity, error) {
	return r.findByGlobalDigest(ctx, "fio_hash", digest)
}

func (r *MySQLIdentityRepository) findByGlobalDigest(ctx context.Context, column string, digest string) ([]*domain.Identity, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + identityColumns + ` FROM blacklist_identities
			  WHERE ` + column + ` = ?
			  ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, digest)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find identities by digest")
	}
	defer rows.Close()

	return scanIdentities(rows)
}

// DistinctSalts returns the distinct hash salts present in storage, sorted
func (r *MySQLIdentityRepository) DistinctSalts(ctx context.Context) ([]string, error) {
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
func (r *MySQLIdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM blacklist_identities WHERE id = ?`, id)
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
