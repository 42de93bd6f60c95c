package service

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
)

const (
	testPepper = "test-pepper-0123456789abcdef0123"
	testSalt   = "a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"
)

func testPersonalData() domain.PersonalData {
	return domain.PersonalData{
		Surname:        "Иванов",
		Name:           "Иван",
		Patronymic:     "Иванович",
		Birthdate:      "01.12.1990",
		Passport:       "4509 123456",
		DepartmentCode: "770-123",
		Phone:          "8 (999) 123-45-67",
	}
}

func TestHasher_Digest(t *testing.T) {
	hasher := NewHasher(testPepper)

	digest := hasher.Digest("иванов иван иванович", testSalt)

	assert.Len(t, digest, 64)
	_, err := hex.DecodeString(digest)
	assert.NoError(t, err, "digest should be valid hex")

	// Same inputs always produce the same digest.
	assert.Equal(t, digest, hasher.Digest("иванов иван иванович", testSalt))
}

func TestHasher_Digest_SaltAndPepperSensitivity(t *testing.T) {
	hasher := NewHasher(testPepper)
	otherHasher := NewHasher("another-pepper-fedcba9876543210fedc")

	base := hasher.Digest("value", testSalt)

	assert.NotEqual(t, base, hasher.Digest("value", "other-salt"))
	assert.NotEqual(t, base, otherHasher.Digest("value", testSalt))
	assert.NotEqual(t, base, hasher.Digest("other-value", testSalt))
}

func TestHasher_GenerateDigests(t *testing.T) {
	hasher := NewHasher(testPepper)

	digests, err := hasher.GenerateDigests(testPersonalData(), testSalt)
	require.NoError(t, err)

	for _, digest := range []string{
		digests.FIO, digests.Surname, digests.Birthdate, digests.Passport,
		digests.DepartmentCode, digests.Phone, digests.PhoneLast10,
	} {
		assert.Len(t, digest, 64)
	}

	// FIO digest matches the component-wise computation.
	assert.Equal(t, hasher.FIODigest("Иванов", "Иван", "Иванович", testSalt), digests.FIO)
}

func TestHasher_GenerateDigests_InputFormatInvariance(t *testing.T) {
	hasher := NewHasher(testPepper)

	canonical, err := hasher.GenerateDigests(testPersonalData(), testSalt)
	require.NoError(t, err)

	// Same person with different casing, spacing and separators.
	variant := domain.PersonalData{
		Surname:        "  ИВАНОВ ",
		Name:           "иВаН",
		Patronymic:     "ИВАНОВИЧ  ",
		Birthdate:      "1990-12-01",
		Passport:       "4509123456",
		DepartmentCode: "770 123",
		Phone:          "+79991234567",
	}
	got, err := hasher.GenerateDigests(variant, testSalt)
	require.NoError(t, err)

	assert.Equal(t, canonical, got)
}

func TestHasher_GenerateDigests_EmptyPhone(t *testing.T) {
	hasher := NewHasher(testPepper)

	data := testPersonalData()
	data.Phone = ""

	digests, err := hasher.GenerateDigests(data, testSalt)
	require.NoError(t, err)

	assert.Empty(t, digests.Phone)
	assert.Empty(t, digests.PhoneLast10)
	assert.NotEmpty(t, digests.FIO)
}

func TestHasher_GenerateDigests_InvalidDate(t *testing.T) {
	hasher := NewHasher(testPepper)

	data := testPersonalData()
	data.Birthdate = "not a date"

	_, err := hasher.GenerateDigests(data, testSalt)
	assert.Error(t, err)
}

func TestHasher_DigestForSearch_MatchesStoredDigests(t *testing.T) {
	hasher := NewHasher(testPepper)

	digests, err := hasher.GenerateDigests(testPersonalData(), testSalt)
	require.NoError(t, err)

	tests := []struct {
		field string
		value string
		want  string
	}{
		{HashFieldFIO, "Иванов Иван Иванович", digests.FIO},
		{HashFieldSurname, "ИВАНОВ", digests.Surname},
		{HashFieldBirthdate, "01/12/1990", digests.Birthdate},
		{HashFieldPassport, "45 09 123456", digests.Passport},
		{HashFieldDepartmentCode, "770123", digests.DepartmentCode},
		{HashFieldPhone, "89991234567", digests.Phone},
		{HashFieldPhoneLast10, "9991234567", digests.PhoneLast10},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, err := hasher.DigestForSearch(tt.field, tt.value, testSalt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasher_DigestForSearch_UnknownField(t *testing.T) {
	hasher := NewHasher(testPepper)

	_, err := hasher.DigestForSearch("email", "x@example.com", testSalt)
	assert.Error(t, err)
}
