// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package fingerprint

import (
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	// ErrBlank indicates an empty or whitespace-only fingerprint string.
	ErrBlank = errors.New("fingerprint: cannot be blank")

	// ErrLength indicates a fingerprint whose normalized form is not 64 characters.
	ErrLength = errors.New("fingerprint: must be 64 hex characters")

	// ErrNotHex indicates a fingerprint containing characters outside [a-f0-9].
	ErrNotHex = errors.New("fingerprint: must contain only hex characters")
)

// Size is the length of a canonical SHA-256 fingerprint in hex characters.
const Size = 64

// Normalize converts a fingerprint string to canonical form: colon separators
// and all whitespace stripped, lowercased. It is a pure, total function with
// no failure mode, and it is idempotent.
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch r {
		case ':', ' ', '\t', '\n', '\r':
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}

// IsValidFormat reports whether the normalized form of input is exactly
// 64 lowercase hex characters.
func IsValidFormat(input string) bool {
	return Validate(input) == nil
}

// Validate checks a fingerprint string and returns a descriptive error when
// it is not a well-formed SHA-256 fingerprint.
//
// Returns:
//   - ErrBlank: input is empty or whitespace-only
//   - ErrLength: normalized form is not 64 characters
//   - ErrNotHex: normalized form contains non-hex characters
//   - nil: input is valid
func Validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrBlank
	}

	normalized := Normalize(input)
	if len(normalized) != Size {
		return ErrLength
	}

	for _, r := range normalized {
		if (r < 'a' || r > 'f') && (r < '0' || r > '9') {
			return ErrNotHex
		}
	}

	return nil
}

// FromDER computes the canonical fingerprint of a DER-encoded certificate.
func FromDER(der []byte) string {
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:])
}

// FromCertificate computes the canonical fingerprint of a parsed certificate,
// hashing its raw DER encoding.
func FromCertificate(cert *x509.Certificate) string {
	return FromDER(cert.Raw)
}
