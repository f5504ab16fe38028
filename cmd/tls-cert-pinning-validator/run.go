// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/cli"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/logger"
	verpkg "github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Create CLI logger
	log := logger.NewCLILogger()

	// Set up signal handling so an in-flight probe is cancelled cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version, log); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
