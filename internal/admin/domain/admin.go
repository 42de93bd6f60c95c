// Package domain defines administrators: the operators acting on behalf of
// organizations. Admins are identified externally by a numeric ID from the
// operator-facing channel and internally by a UUID.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/errors"
)

// Role represents an administrator privilege level.
type Role string

// Roles in ascending privilege order.
const (
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

var roleLevels = map[Role]int{
	RoleManager:    1,
	RoleAdmin:      2,
	RoleSuperAdmin: 3,
}

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// HasPrivilegeOf reports whether the role grants at least the privileges of
// the other role.
func (r Role) HasPrivilegeOf(other Role) bool {
	return roleLevels[r] >= roleLevels[other]
}

var (
	// ErrAdminNotFound indicates the admin was not found.
	ErrAdminNotFound = errors.Wrap(errors.ErrNotFound, "admin not found")

	// ErrAdminExists indicates an admin with the same external ID already exists.
	ErrAdminExists = errors.Wrap(errors.ErrConflict, "admin already exists")

	// ErrInvalidRole indicates an unknown role value.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid admin role")
)

// Admin is an operator account. ExternalID is the identifier the operator
// uses on the submission channel; it is unique across the service. An admin
// may belong to any number of organizations.
type Admin struct {
	ID         uuid.UUID
	ExternalID int64
	Role       Role
	Created    time.Time
	Updated    time.Time
}

// NewAdmin builds an admin with the given external ID and role.
func NewAdmin(externalID int64, role Role) *Admin {
	now := time.Now().UTC()
	return &Admin{
		ID:         uuid.Must(uuid.NewV7()),
		ExternalID: externalID,
		Role:       role,
		Created:    now,
		Updated:    now,
	}
}
