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

// MySQLEntryRepository handles blacklist entry persistence for MySQL
type MySQLEntryRepository struct {
	db *sql.DB
}

// NewMySQLEntryRepository creates a new MySQLEntryRepository
func NewMySQLEntryRepository(db *sql.DB) *MySQLEntryRepository {
	return &MySQLEntryRepository{
		db: db,
	}
}

// Create inserts a new entry
func (r *MySQLEntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blacklist_entries
			  (id, identity_id, organization_id, admin_id, reason, comment, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

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
func (r *MySQLEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM blacklist_entries WHERE id = ?`

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
func (r *MySQLEntryRepository) ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM blacklist_entries
			  WHERE identity_id = ? ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, identityID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list entries by identity")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ActiveByIdentity returns the active entries referencing the identity,
// oldest first
func (r *MySQLEntryRepository) ActiveByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM blacklist_entries
			  WHERE identity_id = ? AND status = ? ORDER BY created_at ASC`

	rows, err := querier.QueryContext(ctx, query, identityID, domain.StatusActive)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list active entries by identity")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// UpdateStatus sets the entry status
func (r *MySQLEntryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE blacklist_entries SET status = ?, updated_at = NOW() WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, status, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry status")
	}
	return checkEntryAffected(result)
}

// UpdateReason sets the entry reason
func (r *MySQLEntryRepository) UpdateReason(ctx context.Context, id uuid.UUID, reason string) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE blacklist_entries SET reason = ?, updated_at = NOW() WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, reason, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update entry reason")
	}
	return checkEntryAffected(result)
}
