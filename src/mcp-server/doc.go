// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver is the bridge adapter for the pinning validation engine.
// It exposes the engine over [MCP] stdio as two tools: validate_pinning,
// which runs one validation and returns the canonical flat-JSON result, and
// fetch_leaf_fingerprint, which fetches a server's leaf certificate
// fingerprint for anchor generation.
//
// The adapter preserves the engine's boundary contract: structural errors
// (bad URL, missing configuration) surface as tool errors, while every
// resolved outcome (match, mismatch, exclusion, timeout, network failure)
// is returned as result text so clients branch on fields, not on failures.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
