// Package domain defines the core blacklist entities: anonymized identities,
// blacklist entries and their audit history. Raw personal data never leaves
// this package boundary in stored form, only one-way digests do.
package domain

// PersonalData carries the raw personal fields accepted at the service
// boundary, before normalization and hashing. Phone may be empty (it is
// optional at submission), every other field is required.
type PersonalData struct {
	Surname        string
	Name           string
	Patronymic     string
	Birthdate      string
	Passport       string
	DepartmentCode string
	Phone          string
}

// PersonDigests holds the fixed set of one-way digests derived from one
// person's normalized fields under a single organization salt. Each digest is
// 64 lowercase hex characters. Phone and PhoneLast10 are empty when no phone
// was submitted.
type PersonDigests struct {
	FIO            string
	Surname        string
	Birthdate      string
	Passport       string
	DepartmentCode string
	Phone          string
	PhoneLast10    string
}
