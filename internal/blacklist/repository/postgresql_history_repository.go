package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/database"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// PostgreSQLHistoryRepository handles history event persistence for
// PostgreSQL. The history table is append-only: there are no update or
// delete operations.
type PostgreSQLHistoryRepository struct {
	db *sql.DB
}

// NewPostgreSQLHistoryRepository creates a new PostgreSQLHistoryRepository
func NewPostgreSQLHistoryRepository(db *sql.DB) *PostgreSQLHistoryRepository {
	return &PostgreSQLHistoryRepository{
		db: db,
	}
}

// Append inserts a history event and assigns its serial ID
func (r *PostgreSQLHistoryRepository) Append(ctx context.Context, event *domain.HistoryEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blacklist_history
			  (entry_id, action, admin_id, old_reason, new_reason, old_status, new_status,
			   comment, signature, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	err := querier.QueryRowContext(ctx, query,
		event.EntryID, event.Action, event.AdminID,
		event.OldReason, event.NewReason, event.OldStatus, event.NewStatus,
		event.Comment, event.Signature, event.Created,
	).Scan(&event.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to append history event")
	}
	return nil
}

// ListByEntry returns the history of an entry in append order
func (r *PostgreSQLHistoryRepository) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, entry_id, action, admin_id, old_reason, new_reason,
			  old_status, new_status, comment, signature, created_at
			  FROM blacklist_history
			  WHERE entry_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list history by entry")
	}
	defer rows.Close()

	var events []*domain.HistoryEvent
	for rows.Next() {
		var event domain.HistoryEvent
		err := rows.Scan(
			&event.ID, &event.EntryID, &event.Action, &event.AdminID,
			&event.OldReason, &event.NewReason, &event.OldStatus, &event.NewStatus,
			&event.Comment, &event.Signature, &event.Created,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan history event")
		}
		events = append(events, &event)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate history events")
	}

	return events, nil
}
