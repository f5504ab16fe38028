// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator

import "encoding/json"

// Mode is the reported operating mode of a validation attempt.
type Mode string

const (
	// ModeFingerprint covers both runtime/default fingerprint anchors and
	// bundled-certificate anchors: comparison is always by leaf fingerprint.
	ModeFingerprint Mode = "fingerprint"

	// ModeExcluded marks the excluded-domain bypass path.
	ModeExcluded Mode = "excluded"
)

// Result is the canonical, immutable outcome of one validation attempt. It
// serializes to a flat mapping; optional fields are omitted when absent,
// never emitted as null placeholders, to keep wire payloads minimal and
// stable across adapters.
//
// Exactly one of {successful match, excluded-domain bypass, error} describes
// the terminal state. FingerprintMatched=false with no ErrorCode is a valid,
// non-exceptional outcome: a mismatch is informational, not a failure.
type Result struct {
	// ActualFingerprint is the server's leaf fingerprint, present whenever
	// a handshake completed.
	ActualFingerprint string `json:"actualFingerprint,omitempty"`

	// FingerprintMatched reports whether the leaf matched an anchor. In
	// excluded mode it is an informational bypass indicator, always true.
	FingerprintMatched bool `json:"fingerprintMatched"`

	// MatchedFingerprint is the configured anchor that matched. Set in
	// fingerprint mode only.
	MatchedFingerprint string `json:"matchedFingerprint,omitempty"`

	// ExcludedDomain is true on the bypass path.
	ExcludedDomain bool `json:"excludedDomain,omitempty"`

	// Mode is "fingerprint" or "excluded".
	Mode Mode `json:"mode"`

	// Error is a human-readable description, present only with ErrorCode.
	Error string `json:"error,omitempty"`

	// ErrorCode is the terminal error class, absent for match, mismatch,
	// and bypass outcomes.
	ErrorCode Code `json:"errorCode,omitempty"`
}

// MarshalFlat serializes the result to its flat JSON wire form.
func (r *Result) MarshalFlat() ([]byte, error) {
	return json.Marshal(r)
}
