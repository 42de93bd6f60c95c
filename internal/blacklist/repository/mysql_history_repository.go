package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/database"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// MySQLHistoryRepository handles history event persistence for MySQL. The
// history table is append-only: there are no update or delete operations.
type MySQLHistoryRepository struct {
	db *sql.DB
}

// NewMySQLHistoryRepository creates a new MySQLHistoryRepository
func NewMySQLHistoryRepository(db *sql.DB) *MySQLHistoryRepository {
	return &MySQLHistoryRepository{
		db: db,
	}
}

// Append inserts a history event and assigns its auto-increment ID
func (r *MySQLHistoryRepository) Append(ctx context.Context, event *domain.HistoryEvent) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO blacklist_history
			  (entry_id, action, admin_id, old_reason, new_reason, old_status, new_status,
			   comment, signature, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(ctx, query,
		event.EntryID, event.Action, event.AdminID,
		event.OldReason, event.NewReason, event.OldStatus, event.NewStatus,
		event.Comment, event.Signature, event.Created,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to append history event")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get history event id")
	}
	event.ID = id
	return nil
}

// ListByEntry returns the history of an entry in append order
func (r *MySQLHistoryRepository) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, entry_id, action, admin_id, old_reason, new_reason,
			  old_status, new_status, comment, signature, created_at
			  FROM blacklist_history
			  WHERE entry_id = ? ORDER BY created_at ASC, id ASC`

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
