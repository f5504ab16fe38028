// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/probe"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/validator"
	x509certs "github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/logger"
)

// newFingerprintCmd builds the fingerprint subcommand, the developer helper
// for generating anchors: it fetches the target server's leaf certificate
// and prints its canonical fingerprint.
func newFingerprintCmd(log logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint HOST[:PORT]",
		Short: "Fetch a server's leaf certificate fingerprint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execFingerprint(cmd.Context(), args[0], log)
		},
	}

	cmd.Flags().BoolVarP(&pemOutput, "pem", "p", false, "also print the leaf certificate in PEM format")

	return cmd
}

// execFingerprint probes the target and prints leaf certificate details.
func execFingerprint(ctx context.Context, target string, log logger.Logger) error {
	host, port := splitTarget(target)

	ctx, cancel := context.WithTimeout(ctx, validator.HandshakeTimeout)
	defer cancel()

	leaf, err := probe.New().Leaf(ctx, host, port, false)
	if err != nil {
		return err
	}

	log.Printf("Host:        %s", host)
	log.Printf("Subject:     %s", leaf.Certificate.Subject.CommonName)
	log.Printf("Issuer:      %s", leaf.Certificate.Issuer.CommonName)
	log.Printf("Not After:   %s", leaf.Certificate.NotAfter.Format("2006-01-02"))
	log.Printf("Fingerprint: %s", leaf.Fingerprint)

	if pemOutput {
		log.Println(string(x509certs.NewDecoder().EncodePEM(leaf.Certificate)))
	}

	return nil
}

// splitTarget separates an optional port from a HOST[:PORT] argument.
func splitTarget(target string) (host, port string) {
	if strings.Contains(target, ":") {
		if h, p, err := net.SplitHostPort(target); err == nil {
			return h, p
		}
	}
	return target, ""
}
