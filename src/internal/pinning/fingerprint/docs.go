// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package fingerprint provides canonicalization and validation of [SHA-256]
// certificate fingerprints. The canonical textual form is 64 lowercase hex
// characters with no separators, computed over the DER encoding of an [X.509]
// certificate. Every component that compares fingerprints goes through this
// package so the comparison rules are byte-exact everywhere.
//
// [SHA-256]: https://grokipedia.com/page/SHA-2
// [X.509]: https://grokipedia.com/page/X.509
package fingerprint
