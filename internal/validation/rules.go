// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

var (
	// fioWordRegex matches a single name component: Cyrillic or Latin letters and hyphens.
	fioWordRegex = regexp.MustCompile(`^[\p{L}-]+$`)

	// nonDigitRegex strips everything that is not a digit.
	nonDigitRegex = regexp.MustCompile(`\D`)

	// birthdateRegexes cover the accepted input formats. The "dmy" order is
	// used for DD.MM.YYYY, DD/MM/YYYY and DD-MM-YYYY; "ymd" for YYYY-MM-DD
	// and YYYY/MM/DD.
	birthdateRegexes = []struct {
		re    *regexp.Regexp
		order string
	}{
		{regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`), "dmy"},
		{regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`), "dmy"},
		{regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`), "dmy"},
		{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`), "ymd"},
		{regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`), "ymd"},
	}
)

// NotBlank checks that a string contains at least one non-whitespace character.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank", "value must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "value cannot be blank")
	}
	return nil
})

// UUIDString checks that a string parses as a UUID.
var UUIDString = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_uuid", "value must be a string")
	}
	if _, err := uuid.Parse(s); err != nil {
		return validation.NewError("validation_uuid", "value must be a valid UUID")
	}
	return nil
})

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// FIO validates a full name: at least three words (surname, name, patronymic),
// each at least two characters of letters and hyphens.
type FIO struct{}

// Validate checks the full-name rules.
func (FIO) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_fio", "full name must be a string")
	}

	parts := strings.Fields(s)
	if len(parts) < 3 {
		return validation.NewError(
			"validation_fio_words",
			"full name must contain at least 3 words (surname, name, patronymic)",
		)
	}

	for _, part := range parts {
		if len([]rune(part)) < 2 {
			return validation.NewError(
				"validation_fio_word_length",
				"each name component must be at least 2 characters",
			)
		}
		if !fioWordRegex.MatchString(part) {
			return validation.NewError(
				"validation_fio_characters",
				fmt.Sprintf("%q contains invalid characters, only letters and hyphens are allowed", part),
			)
		}
	}

	return nil
}

// NameComponent validates a single name part (surname, name or patronymic).
type NameComponent struct{}

// Validate checks a single name component.
func (NameComponent) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_name", "name must be a string")
	}

	s = strings.TrimSpace(s)
	if len([]rune(s)) < 2 {
		return validation.NewError("validation_name_length", "name must be at least 2 characters")
	}
	if !fioWordRegex.MatchString(s) {
		return validation.NewError(
			"validation_name_characters",
			fmt.Sprintf("%q contains invalid characters, only letters and hyphens are allowed", s),
		)
	}

	return nil
}

// Birthdate validates a date of birth in any of the accepted formats and
// enforces an age between MinAge and MaxAge years.
type Birthdate struct {
	MinAge int
	MaxAge int
}

// DefaultBirthdate returns the birthdate rule with the standard 14-120 age bounds.
func DefaultBirthdate() Birthdate {
	return Birthdate{MinAge: 14, MaxAge: 120}
}

// Validate checks the birthdate format, calendar validity and age bounds.
func (b Birthdate) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_birthdate", "birthdate must be a string")
	}

	s = strings.TrimSpace(s)

	var day, month, year int
	matched := false
	for _, format := range birthdateRegexes {
		m := format.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		if format.order == "dmy" {
			day, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
		} else {
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		}
		matched = true
		break
	}

	if !matched {
		return validation.NewError("validation_birthdate_format", "invalid date format, use DD.MM.YYYY")
	}

	birthDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birthDate.Year() != year || birthDate.Month() != time.Month(month) || birthDate.Day() != day {
		return validation.NewError("validation_birthdate_calendar", "the date does not exist")
	}

	now := time.Now().UTC()
	if birthDate.After(now) {
		return validation.NewError("validation_birthdate_future", "birthdate cannot be in the future")
	}

	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}

	if age < b.MinAge {
		return validation.NewError(
			"validation_birthdate_min_age",
			fmt.Sprintf("age must be at least %d years", b.MinAge),
		)
	}
	if age > b.MaxAge {
		return validation.NewError("validation_birthdate_max_age", "birthdate is not plausible")
	}

	return nil
}

// Passport validates a passport number: exactly 10 digits after removing
// separators, with a series that does not start with 0.
type Passport struct{}

// Validate checks the passport rules.
func (Passport) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_passport", "passport must be a string")
	}

	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) != 10 {
		return validation.NewError(
			"validation_passport_length",
			fmt.Sprintf("passport must contain 10 digits (4 series + 6 number), got %d", len(digits)),
		)
	}
	if digits[0] == '0' {
		return validation.NewError("validation_passport_series", "passport series cannot start with 0")
	}

	return nil
}

// DepartmentCode validates a department code: exactly 6 digits after
// removing separators.
type DepartmentCode struct{}

// Validate checks the department code rules.
func (DepartmentCode) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_department_code", "department code must be a string")
	}

	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) != 6 {
		return validation.NewError(
			"validation_department_code_length",
			fmt.Sprintf("department code must contain 6 digits, got %d", len(digits)),
		)
	}

	return nil
}

// Phone validates a phone number: between 10 and 15 digits after removing
// separators. An empty value is accepted, since phone is optional.
type Phone struct{}

// Validate checks the phone rules.
func (Phone) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_phone", "phone must be a string")
	}

	if strings.TrimSpace(s) == "" {
		return nil
	}

	digits := nonDigitRegex.ReplaceAllString(s, "")
	if len(digits) < 10 {
		return validation.NewError("validation_phone_short", "phone number is too short, minimum 10 digits")
	}
	if len(digits) > 15 {
		return validation.NewError("validation_phone_long", "phone number is too long, maximum 15 digits")
	}

	return nil
}
