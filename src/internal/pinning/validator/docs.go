// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package validator orchestrates one certificate-pinning validation attempt:
// it resolves the operating mode through the domain matcher, races the
// certificate probe against a fixed 10-second deadline, compares the presented
// leaf fingerprint against the resolved anchors, and produces the canonical
// [Result].
//
// The boundary contract is a sum type: structurally invalid input and
// configuration problems surface as a [*StructuralError] before any network
// I/O, while every outcome after the handshake attempt begins (match,
// mismatch, timeout, network failure) resolves to a [Result] and never to an
// error. A fingerprint mismatch in particular is an expected, policy-relevant
// outcome, not a failure: callers branch on Result fields, not on error
// values. Adapters (CLI, bridge servers) decide how to surface the structural
// arm without this package depending on any error-signaling convention.
package validator
