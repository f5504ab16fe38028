// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package probe opens a single bounded-time TLS connection to a target host,
// extracts the leaf certificate presented during the handshake, and computes
// its canonical SHA-256 fingerprint.
//
// The pinned path uses a permissive server-trust evaluator (all chains
// accepted). This is a deliberate, documented security-equivalent
// substitution, not a weakening: the probe only inspects the presented
// certificate, and authentication happens afterward via exact anchor
// comparison in the validator. The excluded-domain path instead performs a
// real handshake against system trust so the response shape has parity with
// the pinned path.
package probe
