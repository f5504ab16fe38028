// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/logger"
)

var (
	configFile   string
	bundleDir    string
	fingerprints []string
	jsonOutput   bool
	pemOutput    bool
)

// Execute runs the root command, wiring the validate and fingerprint
// subcommands. The context carries signal-driven cancellation from main.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           "tls-cert-pinning-validator",
		Short:         "TLS certificate pinning validator",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newValidateCmd(log))
	rootCmd.AddCommand(newFingerprintCmd(log))

	return rootCmd.ExecuteContext(ctx)
}
