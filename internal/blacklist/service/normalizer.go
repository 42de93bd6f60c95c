// Package service holds the pure domain services of the blacklist module:
// field normalization, digest generation, free-text search parsing and
// history signing. Nothing here touches the database.
package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigitRegex     = regexp.MustCompile(`\D`)
	nonDigitPlusRegex = regexp.MustCompile(`[^\d+]`)
)

// NormalizeText lowercases the text and collapses runs of whitespace into
// single spaces. All text fields pass through this before hashing so that
// casing and spacing differences do not change the digest.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeFIO builds the canonical full-name string from its components:
// normalized surname, name and patronymic joined by single spaces.
func NormalizeFIO(surname, name, patronymic string) string {
	return NormalizeText(surname) + " " + NormalizeText(name) + " " + NormalizeText(patronymic)
}

// NormalizeDigits strips every non-digit character. Used for passports and
// department codes, where separators vary but the digits are the data.
func NormalizeDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeDate converts a date in any accepted format to ISO YYYY-MM-DD.
//
// Accepted inputs: DD.MM.YYYY, DD/MM/YYYY, DD-MM-YYYY, YYYY-MM-DD and
// YYYY/MM/DD. The order is decided by the first component: a value above 31
// must be a year.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	var parts []string
	switch {
	case strings.Contains(s, "."):
		parts = strings.Split(s, ".")
	case strings.Contains(s, "/"):
		parts = strings.Split(s, "/")
	case strings.Contains(s, "-"):
		parts = strings.Split(s, "-")
	default:
		return "", fmt.Errorf("unrecognized date format: %q", s)
	}

	if len(parts) != 3 {
		return "", fmt.Errorf("invalid date format: %q", s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", fmt.Errorf("invalid date format: %q", s)
		}
		nums[i] = n
	}

	var year, month, day int
	if nums[0] > 31 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), nil
}

// NormalizePhone converts a phone number to the canonical +7XXXXXXXXXX form.
//
// Handles the common Russian input shapes: 11 digits starting with 8 or 7,
// bare 10-digit subscriber numbers, and 12-digit values with a duplicated
// country prefix. Non-digit characters other than a leading plus are dropped.
func NormalizePhone(phone string) string {
	digits := nonDigitPlusRegex.ReplaceAllString(phone, "")
	digits = strings.TrimPrefix(digits, "+")

	switch len(digits) {
	case 11:
		if digits[0] == '8' {
			digits = "7" + digits[1:]
		} else if digits[0] != '7' {
			digits = "7" + digits
		}
	case 10:
		digits = "7" + digits
	case 12:
		if strings.HasPrefix(digits, "7") {
			digits = digits[:11]
		} else {
			digits = "7" + digits[1:]
		}
	}

	return "+" + digits
}

// PhoneLast10 returns the last 10 digits of a normalized phone number, the
// subscriber part without the country prefix. Numbers too short to carry a
// prefix are returned unchanged.
func PhoneLast10(normalizedPhone string) string {
	if len(normalizedPhone) >= 12 {
		return normalizedPhone[len(normalizedPhone)-10:]
	}
	return normalizedPhone
}
