package domain

import (
	"time"

	"github.com/google/uuid"
)

// Match-field labels reported back to the operator with each search result.
const (
	FieldFIO            = "fio"
	FieldSurname        = "surname"
	FieldPassport       = "passport"
	FieldBirthdate      = "birthdate"
	FieldDepartmentCode = "department_code"
	FieldPhone          = "phone"
)

// SearchCriteria is the subset of personal fields supplied by an operator
// for a multi-criteria search. Empty fields are not part of the query.
// Surname serves the partial search where the operator knows the family
// name but not the full name.
type SearchCriteria struct {
	FIO            string
	Surname        string
	Passport       string
	Birthdate      string
	DepartmentCode string
	Phone          string
}

// HasAny reports whether at least one criterion was supplied.
func (c SearchCriteria) HasAny() bool {
	return c.FIO != "" || c.Surname != "" || c.Passport != "" ||
		c.Birthdate != "" || c.DepartmentCode != "" || c.Phone != ""
}

// Candidate is a matched identity together with the labels of the criteria
// fields whose digests agreed with its stored digests.
type Candidate struct {
	Identity      *Identity
	MatchedFields []string
}

// SearchRow is one assembled search result: the entry joined with its
// identity, filing organization and reporting admin. Salts and digests are
// deliberately absent.
type SearchRow struct {
	IdentityID       uuid.UUID
	EntryID          uuid.UUID
	OrganizationID   int64
	OrganizationName string
	AdminExternalID  int64
	Reason           string
	Comment          string
	Status           Status
	MatchedFields    []string
	Created          time.Time
}

// AddResult is the outcome of an add-to-blacklist operation. AlreadyExisted
// reports whether an active entry existed for the resolved identity before
// this call; it is informational and never blocks the add.
type AddResult struct {
	Identity       *Identity
	Entry          *Entry
	AlreadyExisted bool
}
