// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/config"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/version"
)

var serverName = "TLS Certificate Pinning Validator" // MCP server name
var appVersion = version.Version                     // default version

// EnvBundleDir points the bridge at the bundled-anchor certificate
// directory.
const EnvBundleDir = "PINNING_BUNDLE_DIR"

// Run starts the MCP server with certificate pinning validation tools.
// The pinning configuration is loaded from the PINNING_CONFIG_FILE
// environment variable; bundled certificates resolve against
// PINNING_BUNDLE_DIR.
func Run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	store := config.NewCertStore(os.Getenv(EnvBundleDir))

	s := server.NewMCPServer(
		serverName,
		appVersion,
		server.WithToolCapabilities(true),
	)

	// Define pinning validation tool
	validatePinningTool := mcp.NewTool("validate_pinning",
		mcp.WithDescription("Validate a server's TLS leaf certificate against pinned SHA-256 fingerprint anchors"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Target https URL to validate"),
		),
		mcp.WithString("fingerprints",
			mcp.Description("Comma-separated SHA-256 leaf fingerprints; override configuration defaults when present"),
		),
	)

	// Define leaf fingerprint fetching tool
	fetchLeafFingerprintTool := mcp.NewTool("fetch_leaf_fingerprint",
		mcp.WithDescription("Fetch the SHA-256 fingerprint of the leaf certificate presented by a remote host"),
		mcp.WithString("hostname",
			mcp.Required(),
			mcp.Description("Remote hostname to connect to"),
		),
		mcp.WithNumber("port",
			mcp.Description("Port number (default: 443)"),
			mcp.DefaultNumber(443),
		),
	)

	// Register tool handlers
	s.AddTool(validatePinningTool, makeValidatePinningHandler(cfg, store))
	s.AddTool(fetchLeafFingerprintTool, handleFetchLeafFingerprint)

	// Start server
	return server.ServeStdio(s)
}
