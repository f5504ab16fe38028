// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/config"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/probe"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/validator"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/logger"
)

// newValidateCmd builds the validate subcommand. It runs one pinning
// validation: anchors come from --fingerprint flags (highest precedence) or
// the loaded configuration, and the outcome is always the canonical result.
// A mismatch prints with fingerprintMatched=false rather than failing the
// command; only structural errors (bad URL, no configuration) exit non-zero.
func newValidateCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate URL",
		Short: "Validate a server's certificate against pinned anchors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execValidate(cmd, args[0], log)
		},
	}

	cmd.Flags().StringArrayVarP(&fingerprints, "fingerprint", "f", nil, "expected SHA-256 leaf fingerprint (repeatable; overrides config defaults)")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "pinning configuration file (JSON or YAML, default: $"+config.EnvConfigFile+")")
	cmd.Flags().StringVarP(&bundleDir, "bundle-dir", "b", "", "directory holding bundled anchor certificates")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "emit the result as flat JSON")

	return cmd
}

// execValidate loads configuration, runs the validation, and renders the
// result.
func execValidate(cmd *cobra.Command, rawURL string, log logger.Logger) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	store := config.NewCertStore(bundleDir)
	v := validator.New(probe.New(), store.ResolveFingerprints)

	result, err := v.Validate(cmd.Context(), validator.Request{
		URL:                 rawURL,
		RuntimeFingerprints: fingerprints,
	}, cfg.Domain())
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := result.MarshalFlat()
		if err != nil {
			return fmt.Errorf("cli: failed to encode result: %w", err)
		}
		log.Println(string(data))
		return nil
	}

	log.Println(renderResultTable(result))
	return nil
}

// renderResultTable renders a validation result as a markdown table,
// omitting absent optional fields like the wire form does.
func renderResultTable(result *validator.Result) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Field", "Value"})

	rows := [][]string{
		{"mode", string(result.Mode)},
		{"fingerprintMatched", fmt.Sprintf("%v", result.FingerprintMatched)},
	}
	if result.ActualFingerprint != "" {
		rows = append(rows, []string{"actualFingerprint", result.ActualFingerprint})
	}
	if result.MatchedFingerprint != "" {
		rows = append(rows, []string{"matchedFingerprint", result.MatchedFingerprint})
	}
	if result.ExcludedDomain {
		rows = append(rows, []string{"excludedDomain", "true"})
	}
	if result.ErrorCode != "" {
		rows = append(rows, []string{"errorCode", string(result.ErrorCode)})
		rows = append(rows, []string{"error", result.Error})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
