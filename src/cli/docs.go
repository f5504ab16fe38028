// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the TLS certificate
// pinning validator. It implements a Cobra-based CLI with two commands:
// validate, which runs one pinning validation against a target URL and
// reports the canonical result as a table or JSON, and fingerprint, which
// fetches a server's leaf certificate fingerprint to help developers
// generate anchors. The package integrates with the logger package for
// output and error reporting.
package cli
