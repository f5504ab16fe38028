// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/config"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/probe"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/validator"
)

// makeValidatePinningHandler binds the loaded configuration and certificate
// store to the validate_pinning tool.
func makeValidatePinningHandler(cfg *config.Pinning, store *config.CertStore) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	v := validator.New(probe.New(), store.ResolveFingerprints)

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rawURL, err := request.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("url parameter required: %v", err)), nil
		}

		result, err := v.Validate(ctx, validator.Request{
			URL:                 rawURL,
			RuntimeFingerprints: splitFingerprints(request.GetString("fingerprints", "")),
		}, cfg.Domain())
		if err != nil {
			// Structural arm: invalid input or configuration, no probe ran.
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := result.MarshalFlat()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(data)), nil
	}
}

// handleFetchLeafFingerprint fetches a remote host's leaf certificate and
// reports its canonical fingerprint.
func handleFetchLeafFingerprint(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hostname, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}

	port := request.GetInt("port", 443)

	ctx, cancel := context.WithTimeout(ctx, validator.HandshakeTimeout)
	defer cancel()

	leaf, err := probe.New().Leaf(ctx, hostname, strconv.Itoa(port), false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Leaf Certificate Fingerprint:\n"
	result += fmt.Sprintf("Host: %s:%d\n", hostname, port)
	result += fmt.Sprintf("Subject: %s\n", leaf.Certificate.Subject.CommonName)
	result += fmt.Sprintf("Issuer: %s\n", leaf.Certificate.Issuer.CommonName)
	result += fmt.Sprintf("Not After: %s\n", leaf.Certificate.NotAfter.Format("2006-01-02"))
	result += fmt.Sprintf("SHA-256: %s", leaf.Fingerprint)

	return mcp.NewToolResultText(result), nil
}

// splitFingerprints parses the comma-separated fingerprints parameter,
// dropping empty entries.
func splitFingerprints(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
