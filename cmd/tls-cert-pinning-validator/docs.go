// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-cert-pinning-validator is a command-line tool for validating a
// server's TLS leaf certificate against pinned SHA-256 fingerprint anchors
// and for generating anchors from live servers.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-pinning-validator/cmd/tls-cert-pinning-validator@latest
//
// # Usage
//
//	tls-cert-pinning-validator validate URL [FLAGS]
//	tls-cert-pinning-validator fingerprint HOST[:PORT] [FLAGS]
//
// # Flags (validate)
//
//	-f, --fingerprint  Expected SHA-256 leaf fingerprint (repeatable)
//	-c, --config       Pinning configuration file (JSON or YAML)
//	-b, --bundle-dir   Directory holding bundled anchor certificates
//	-j, --json         Emit the result as flat JSON
//
// # Flags (fingerprint)
//
//	-p, --pem          Also print the leaf certificate in PEM format
//
// # Examples
//
// Validate a host against an explicit fingerprint:
//
//	tls-cert-pinning-validator validate https://example.com \
//	  -f ab:cd:ef...
//
// Validate using a configuration file:
//
//	tls-cert-pinning-validator validate https://api.example.com -c pinning.yaml
//
// Generate an anchor for a host:
//
//	tls-cert-pinning-validator fingerprint example.com:443
//
// A fingerprint mismatch is reported in the result, not as a command
// failure: the command exits non-zero only for structural errors such as a
// non-https URL or missing configuration.
package main
