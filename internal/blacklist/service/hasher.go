package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
)

// Search field names accepted by DigestForSearch.
const (
	HashFieldFIO            = "fio"
	HashFieldSurname        = "surname"
	HashFieldBirthdate      = "birthdate"
	HashFieldPassport       = "passport"
	HashFieldDepartmentCode = "department_code"
	HashFieldPhone          = "phone"
	HashFieldPhoneLast10    = "phone_last10"
)

// Hasher produces one-way digests of normalized personal fields. Every digest
// is SHA-256 over the normalized value concatenated with the organization
// salt and the global pepper, rendered as lowercase hex. The same value
// hashed under the same salt always yields the same digest, which is what
// makes equality matching on anonymized data possible.
type Hasher struct {
	pepper string
}

// NewHasher creates a hasher bound to the global pepper.
func NewHasher(pepper string) *Hasher {
	return &Hasher{pepper: pepper}
}

// Digest computes the digest of an already-normalized value under the given
// organization salt.
func (h *Hasher) Digest(value, orgSalt string) string {
	sum := sha256.Sum256([]byte(value + orgSalt + h.pepper))
	return hex.EncodeToString(sum[:])
}

// GenerateDigests normalizes every field of the personal data and computes
// the full digest bundle under the given organization salt. Phone digests are
// left empty when no phone was submitted.
func (h *Hasher) GenerateDigests(data domain.PersonalData, orgSalt string) (domain.PersonDigests, error) {
	surname := NormalizeText(data.Surname)
	name := NormalizeText(data.Name)
	patronymic := NormalizeText(data.Patronymic)

	birthdate, err := NormalizeDate(data.Birthdate)
	if err != nil {
		return domain.PersonDigests{}, err
	}

	passport := NormalizeDigits(data.Passport)
	departmentCode := NormalizeDigits(data.DepartmentCode)

	fio := surname + " " + name + " " + patronymic

	digests := domain.PersonDigests{
		FIO:            h.Digest(fio, orgSalt),
		Surname:        h.Digest(surname, orgSalt),
		Birthdate:      h.Digest(birthdate, orgSalt),
		Passport:       h.Digest(passport, orgSalt),
		DepartmentCode: h.Digest(departmentCode, orgSalt),
	}

	if NormalizeDigits(data.Phone) != "" {
		phone := NormalizePhone(data.Phone)
		digests.Phone = h.Digest(phone, orgSalt)
		digests.PhoneLast10 = h.Digest(PhoneLast10(phone), orgSalt)
	}

	return digests, nil
}

// DigestForSearch normalizes a single search value according to its field
// kind and computes its digest under the given organization salt. This is how
// search criteria are compared against stored identities: same normalization,
// same salt, same pepper.
func (h *Hasher) DigestForSearch(field, value, orgSalt string) (string, error) {
	var normalized string

	switch field {
	case HashFieldFIO, HashFieldSurname:
		normalized = NormalizeText(value)
	case HashFieldBirthdate:
		var err error
		normalized, err = NormalizeDate(value)
		if err != nil {
			return "", err
		}
	case HashFieldPassport, HashFieldDepartmentCode:
		normalized = NormalizeDigits(value)
	case HashFieldPhone:
		normalized = NormalizePhone(value)
	case HashFieldPhoneLast10:
		normalized = PhoneLast10(NormalizePhone(value))
	default:
		return "", fmt.Errorf("unknown search field: %q", field)
	}

	return h.Digest(normalized, orgSalt), nil
}

// FIODigest computes the full-name digest from separate name components.
func (h *Hasher) FIODigest(surname, name, patronymic, orgSalt string) string {
	return h.Digest(NormalizeFIO(surname, name, patronymic), orgSalt)
}
