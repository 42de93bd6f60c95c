// Package domain defines the organization entity. Organizations are the
// tenants of the shared blacklist: each one owns a secret hash salt that
// scopes every digest stored on its behalf.
package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rentguard/blacklist/internal/errors"
)

// Salt size in bytes; rendered as 64 hex characters.
const saltBytes = 32

var (
	// ErrOrganizationNotFound indicates the organization was not found.
	ErrOrganizationNotFound = errors.Wrap(errors.ErrNotFound, "organization not found")

	// ErrOrganizationExists indicates an organization with the same name
	// already exists.
	ErrOrganizationExists = errors.Wrap(errors.ErrConflict, "organization already exists")
)

// Organization is a participating company. HashSalt is generated once at
// creation and never rotated: rotating it would orphan every digest derived
// under it. The salt must never appear in API responses or logs.
type Organization struct {
	ID       int64
	Name     string
	HashSalt string
	Created  time.Time
	Updated  time.Time
}

// NewOrganization creates an organization with a freshly generated salt.
// The ID is assigned by the database.
func NewOrganization(name string) (*Organization, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Organization{
		Name:     name,
		HashSalt: salt,
		Created:  now,
		Updated:  now,
	}, nil
}

// GenerateSalt returns a 64-character hex salt from crypto/rand.
func GenerateSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate organization salt")
	}
	return hex.EncodeToString(buf), nil
}
