// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads and validates the pinning configuration the
// validation engine consumes: default fingerprints, bundled certificates
// keyed by domain, a global certificate fallback, and excluded domains.
//
// Configuration is read from a JSON or YAML file (extension-detected),
// checked against an embedded JSON Schema, and then validated fail-fast:
// every configured fingerprint must normalize to exactly 64 lowercase hex
// characters or loading is rejected. The loaded configuration is read-only
// and safely shared by concurrent validation attempts for the process
// lifetime.
//
// The package also provides the certificate store that resolves bundled
// anchor certificate identifiers to files on disk.
package config
