package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "ИВАНОВ", "иванов"},
		{"collapses spaces", "  Иванов   Иван  ", "иванов иван"},
		{"tabs and newlines", "Иванов\tИван\nИванович", "иванов иван иванович"},
		{"empty", "", ""},
		{"latin", "  Smith   John ", "smith john"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.input))
		})
	}
}

func TestNormalizeFIO(t *testing.T) {
	got := NormalizeFIO(" ИВАНОВ ", "Иван", "  иванович")
	assert.Equal(t, "иванов иван иванович", got)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"dots dmy", "01.12.1990", "1990-12-01"},
		{"slashes dmy", "01/12/1990", "1990-12-01"},
		{"dashes dmy", "01-12-1990", "1990-12-01"},
		{"iso", "1990-12-01", "1990-12-01"},
		{"slashes ymd", "1990/12/01", "1990-12-01"},
		{"surrounding spaces", " 05.01.2000 ", "2000-01-05"},
		{"single digit components", "5.1.2000", "2000-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate_AllFormatsAgree(t *testing.T) {
	inputs := []string{"01.12.1990", "01/12/1990", "01-12-1990", "1990-12-01", "1990/12/01"}

	for _, input := range inputs {
		got, err := NormalizeDate(input)
		require.NoError(t, err)
		assert.Equal(t, "1990-12-01", got, "input %q", input)
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	tests := []string{
		"19901201",
		"01.12",
		"01.12.1990.05",
		"ab.cd.efgh",
		"",
	}

	for _, input := range tests {
		_, err := NormalizeDate(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "4509123456", NormalizeDigits("45 09 123456"))
	assert.Equal(t, "770123", NormalizeDigits("770-123"))
	assert.Equal(t, "", NormalizeDigits("no digits"))
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "+79991234567", "+79991234567"},
		{"leading eight", "89991234567", "+79991234567"},
		{"leading seven", "79991234567", "+79991234567"},
		{"bare ten digits", "9991234567", "+79991234567"},
		{"formatted", "+7 (999) 123-45-67", "+79991234567"},
		{"formatted with eight", "8 (999) 123-45-67", "+79991234567"},
		{"eleven digits other prefix", "99991234567", "+799991234567"},
		{"twelve digits with seven", "779991234567", "+77999123456"},
		{"twelve digits other prefix", "879991234567", "+779991234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}

func TestNormalizePhone_EquivalentFormsAgree(t *testing.T) {
	inputs := []string{
		"+79991234567",
		"89991234567",
		"79991234567",
		"9991234567",
		"+7 (999) 123-45-67",
		"8 (999) 123-45-67",
		"8-999-123-45-67",
	}

	for _, input := range inputs {
		assert.Equal(t, "+79991234567", NormalizePhone(input), "input %q", input)
	}
}

func TestPhoneLast10(t *testing.T) {
	assert.Equal(t, "9991234567", PhoneLast10("+79991234567"))
	assert.Equal(t, "+999123456", PhoneLast10("+999123456"))
}
