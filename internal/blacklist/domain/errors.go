package domain

import (
	"github.com/rentguard/blacklist/internal/errors"
)

var (
	// ErrIdentityNotFound indicates the identity was not found.
	ErrIdentityNotFound = errors.Wrap(errors.ErrNotFound, "identity not found")

	// ErrIdentityExists indicates an identity with the same identity key
	// already exists in the organization.
	ErrIdentityExists = errors.Wrap(errors.ErrConflict, "identity already exists")

	// ErrEntryNotFound indicates the blacklist entry was not found.
	ErrEntryNotFound = errors.Wrap(errors.ErrNotFound, "blacklist entry not found")

	// ErrEntryNotActive indicates a deactivate was requested for an entry
	// that is already inactive.
	ErrEntryNotActive = errors.Wrap(errors.ErrInvalidInput, "blacklist entry is not active")

	// ErrEntryAlreadyActive indicates a reactivate was requested for an entry
	// that is already active.
	ErrEntryAlreadyActive = errors.Wrap(errors.ErrInvalidInput, "blacklist entry is already active")

	// ErrNoCriteria indicates a search was requested without any criteria.
	ErrNoCriteria = errors.Wrap(errors.ErrInvalidInput, "no search criteria supplied")

	// ErrSignatureInvalid indicates a history event signature does not match
	// its contents.
	ErrSignatureInvalid = errors.New("history event signature is invalid")
)
