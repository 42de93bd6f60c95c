package service

import (
	"regexp"
	"strings"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
)

var (
	parserDateRegex     = regexp.MustCompile(`^(\d{2})[./-](\d{2})[./-](\d{4})$`)
	parserPassportRegex = regexp.MustCompile(`^(\d{4})\s*(\d{6})$`)
	parserDeptCodeRegex = regexp.MustCompile(`^(\d{3})[-\s]?(\d{3})$`)
	parserFIOWordRegex  = regexp.MustCompile(`^[\p{L}-]{2,}$`)

	parserPhoneRegexes = []*regexp.Regexp{
		regexp.MustCompile(`^\+7\d{10}$`),
		regexp.MustCompile(`^8\d{10}$`),
		regexp.MustCompile(`^7\d{10}$`),
		regexp.MustCompile(`^\+7[\s-]?\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`),
		regexp.MustCompile(`^8[\s-]?\(?\d{3}\)?[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`),
	}
)

// ParseSearchText classifies each line of free-form operator input into
// search criteria: full name, surname, passport, birthdate, department code
// or phone. Lines are tried in a fixed priority order and the first line
// matching a field wins; later lines of the same kind are ignored.
// Unrecognized lines are skipped. A single bare word is taken as a surname.
func ParseSearchText(text string) domain.SearchCriteria {
	var criteria domain.SearchCriteria

	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case criteria.Passport == "" && isPassportLine(line):
			criteria.Passport = NormalizeDigits(line)
		case criteria.DepartmentCode == "" && isDepartmentCodeLine(line):
			criteria.DepartmentCode = NormalizeDigits(line)
		case criteria.Birthdate == "" && parserDateRegex.MatchString(line):
			criteria.Birthdate, _ = NormalizeDate(line)
		case criteria.Phone == "" && isPhoneLine(line):
			criteria.Phone = NormalizePhone(line)
		case criteria.FIO == "" && isFIOLine(line):
			criteria.FIO = NormalizeText(line)
		case criteria.Surname == "" && isSurnameLine(line):
			criteria.Surname = NormalizeText(line)
		}
	}

	return criteria
}

func isPassportLine(line string) bool {
	digits := NormalizeDigits(line)
	if len(digits) == 10 && digits[0] != '0' {
		return true
	}
	return parserPassportRegex.MatchString(line)
}

func isDepartmentCodeLine(line string) bool {
	digits := NormalizeDigits(line)
	if len(digits) != 6 {
		return false
	}
	return parserDeptCodeRegex.MatchString(line) || digits == line
}

func isPhoneLine(line string) bool {
	clean := nonDigitPlusRegex.ReplaceAllString(line, "")
	if strings.HasPrefix(clean, "+7") && len(clean) == 12 {
		return true
	}
	if (strings.HasPrefix(clean, "8") || strings.HasPrefix(clean, "7")) && len(clean) == 11 {
		return true
	}
	for _, re := range parserPhoneRegexes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

func isFIOLine(line string) bool {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if !parserFIOWordRegex.MatchString(part) {
			return false
		}
	}
	return true
}

func isSurnameLine(line string) bool {
	parts := strings.Fields(line)
	return len(parts) == 1 && parserFIOWordRegex.MatchString(parts[0])
}
