package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of a blacklist entry.
type Status string

// Blacklist entry statuses.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Entry is one blacklist filing: a reason and status referencing an
// anonymized identity. Many entries may reference one identity (re-offenses
// across time or organizations). Entries are created active and are toggled
// by deactivate/reactivate; they are never hard-deleted by normal flows.
type Entry struct {
	ID             uuid.UUID
	IdentityID     uuid.UUID
	OrganizationID int64
	AdminID        uuid.UUID
	Reason         string
	Comment        string
	Status         Status
	Created        time.Time
	Updated        time.Time
}

// NewEntry builds an active entry for the given identity.
func NewEntry(identityID uuid.UUID, organizationID int64, adminID uuid.UUID, reason, comment string) *Entry {
	now := time.Now().UTC()
	return &Entry{
		ID:             uuid.Must(uuid.NewV7()),
		IdentityID:     identityID,
		OrganizationID: organizationID,
		AdminID:        adminID,
		Reason:         reason,
		Comment:        comment,
		Status:         StatusActive,
		Created:        now,
		Updated:        now,
	}
}

// IsActive reports whether the entry is currently active.
func (e *Entry) IsActive() bool {
	return e.Status == StatusActive
}
