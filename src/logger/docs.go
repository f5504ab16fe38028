// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the logging interface shared by the CLI and the
// bridge server. CLI mode writes human-readable lines; bridge mode writes
// structured JSON lines to a side channel so stdout stays reserved for the
// stdio protocol.
package logger
