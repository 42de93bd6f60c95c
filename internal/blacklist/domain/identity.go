package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an anonymized person record. It stores only salted, peppered
// digests of the personal fields, plus a copy of the owning organization's
// salt taken at creation time so digests remain matchable even if the
// organization record changes later.
//
// Within one organization the triple (FIOHash, BirthdateHash, PassportHash)
// is unique; it is the organization-local identity key. Identities are never
// mutated after creation except for the Updated timestamp, and never deleted
// by normal flows.
type Identity struct {
	ID                 uuid.UUID
	OrganizationID     int64
	HashSalt           string
	FIOHash            string
	SurnameHash        string
	BirthdateHash      string
	PassportHash       string
	DepartmentCodeHash string
	PhoneHash          string
	PhoneLast10Hash    string
	Created            time.Time
	Updated            time.Time
}

// NewIdentity builds an identity from a digest bundle for the given organization.
func NewIdentity(organizationID int64, hashSalt string, digests PersonDigests) *Identity {
	now := time.Now().UTC()
	return &Identity{
		ID:                 uuid.Must(uuid.NewV7()),
		OrganizationID:     organizationID,
		HashSalt:           hashSalt,
		FIOHash:            digests.FIO,
		SurnameHash:        digests.Surname,
		BirthdateHash:      digests.Birthdate,
		PassportHash:       digests.Passport,
		DepartmentCodeHash: digests.DepartmentCode,
		PhoneHash:          digests.Phone,
		PhoneLast10Hash:    digests.PhoneLast10,
		Created:            now,
		Updated:            now,
	}
}
