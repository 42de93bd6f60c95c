package domain

import (
	"time"

	"github.com/google/uuid"
)

// Action represents the kind of state transition recorded in the history log.
type Action string

// History actions.
const (
	ActionAdded       Action = "added"
	ActionUpdated     Action = "updated"
	ActionDeactivated Action = "deactivated"
	ActionReactivated Action = "reactivated"
)

// HistoryEvent is one entry in the append-only audit ledger of a blacklist
// entry. Events are immutable once written and carry an HMAC signature over
// their canonical representation so tampering is detectable.
//
// Old/new reason and status fields are empty when the action did not change
// them. The ID is assigned by the database (serial).
type HistoryEvent struct {
	ID        int64
	EntryID   uuid.UUID
	Action    Action
	AdminID   uuid.UUID
	OldReason string
	NewReason string
	OldStatus Status
	NewStatus Status
	Comment   string
	Signature string
	Created   time.Time
}
