package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
)

// HistorySigner signs history events with HMAC-SHA256. The signing key is
// derived from the global pepper via HKDF-SHA256 so the pepper itself is
// never used directly as MAC key material. The info string is versioned for
// future algorithm changes.
type HistorySigner struct {
	signingKey []byte
}

// NewHistorySigner derives the signing key from the pepper and returns a
// ready-to-use signer.
func NewHistorySigner(pepper string) (*HistorySigner, error) {
	info := []byte("history-signing-v1")
	kdf := hkdf.New(sha256.New, []byte(pepper), nil, info)

	key := make([]byte, 32)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive history signing key: %w", err)
	}

	return &HistorySigner{signingKey: key}, nil
}

// canonicalize converts a history event to its canonical byte representation.
// Variable-length fields are length-prefixed to prevent ambiguity between
// adjacent fields. The serial ID is excluded since it is assigned after
// signing.
func (s *HistorySigner) canonicalize(event *domain.HistoryEvent) []byte {
	buf := make([]byte, 0, 256)

	buf = append(buf, event.EntryID[:]...)
	buf = append(buf, event.AdminID[:]...)

	buf = appendLengthPrefixed(buf, []byte(event.Action))
	buf = appendLengthPrefixed(buf, []byte(event.OldReason))
	buf = appendLengthPrefixed(buf, []byte(event.NewReason))
	buf = appendLengthPrefixed(buf, []byte(event.OldStatus))
	buf = appendLengthPrefixed(buf, []byte(event.NewStatus))
	buf = appendLengthPrefixed(buf, []byte(event.Comment))

	// Microsecond precision: the stored timestamp column drops nanoseconds,
	// and the signature must survive a database round trip.
	timeBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(timeBytes, uint64(event.Created.UnixMicro()))
	buf = append(buf, timeBytes...)

	return buf
}

// appendLengthPrefixed adds a 4-byte big-endian length prefix followed by data.
func appendLengthPrefixed(buf []byte, data []byte) []byte {
	length := make([]byte, 4)
	binary.BigEndian.PutUint32(length, uint32(len(data)))
	buf = append(buf, length...)
	buf = append(buf, data...)
	return buf
}

// Sign computes the hex-encoded HMAC-SHA256 signature of the event.
func (s *HistorySigner) Sign(event *domain.HistoryEvent) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write(s.canonicalize(event))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks the event signature against its current contents. Returns
// ErrSignatureInvalid when the event was tampered with after signing.
func (s *HistorySigner) Verify(event *domain.HistoryEvent) error {
	expected := s.Sign(event)
	if !hmac.Equal([]byte(event.Signature), []byte(expected)) {
		return domain.ErrSignatureInvalid
	}
	return nil
}
