// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mcp-server exposes the certificate pinning validation engine over MCP
// stdio for bridge clients. Configuration comes from the
// PINNING_CONFIG_FILE and PINNING_BUNDLE_DIR environment variables.
package main

import (
	"os"

	mcpserver "github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/mcp-server"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/logger"
)

func main() {
	// Bridge mode logs to stderr so stdout stays reserved for the protocol
	log := logger.NewJSONLogger(os.Stderr, false)

	if err := mcpserver.Run(); err != nil {
		log.Printf("MCP server failed: %v", err)
		os.Exit(1)
	}
}
