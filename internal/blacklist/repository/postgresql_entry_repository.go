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

const entryColumns = `id, identity_id, organization_id, admin_id, reason,
	comment, status, created_at, updated_at`

// PostgreSQLEntryRepository handles blacklist entry persistence for PostgreSQL
type PostgreSQLEntryRepository struct {
	db *sql.DB
}

// NewPostgreSQLEntryRepository creates a new PostgreSQLEntryRepository
func NewPostgreSQLEntryRepository(db *sql.DB) *PostgreSQLEntryRepository {
	return &PostgreSQLEntryRepository{
		db: db,
	}
}

// Create inserts a new entry
func (r *PostgreSQLEntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blacklist_entries
			  (id, identity_id, organization_id, admin_id, reason, comment, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		entry.ID, entry.IdentityID, entry.OrganizationID, entry.AdminID,
		entry.Reason, entry.Comment, entry.Status,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create entry")
	}
	return nil
}

// GetByID retrieves an entry by ID
func (r *PostgreSQLEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM blacklist_entries WHERE id = $1`

	entry, err := scanEntry(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get entry by id")
	}

	return entry, nil
}

// ListByIdentity returns every entry referencing the identity, oldest first
func (r *PostgreSQLEntryRepository) ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM blacklist_entries
			  WHERE identity_id = $1 ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, identityID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries by identity")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ActiveByIdentity returns the active entries referencing the identity,
// oldest first
func (r *PostgreSQLEntryRepository) ActiveByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM blacklist_entries
			  WHERE identity_id = $1 AND status = $2 ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, identityID, domain.StatusActive)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list active entries by identity")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// UpdateStatus sets the entry status
func (r *PostgreSQLEntryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE blacklist_entries SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, status, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry status")
	}
	return checkEntryAffected(result)
}

// UpdateReason sets the entry reason
func (r *PostgreSQLEntryRepository) UpdateReason(ctx context.Context, id uuid.UUID, reason string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE blacklist_entries SET reason = $1, updated_at = NOW() WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, reason, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry reason")
	}
	return checkEntryAffected(result)
}

func checkEntryAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var entry domain.Entry
	err := row.Scan(
		&entry.ID, &entry.IdentityID, &entry.OrganizationID, &entry.AdminID,
		&entry.Reason, &entry.Comment, &entry.Status,
		&entry.Created, &entry.Updated,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func scanEntries(rows *sql.Rows) ([]*domain.Entry, error) {
	var entries []*domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan entry")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate entries")
	}
	return entries, nil
}
