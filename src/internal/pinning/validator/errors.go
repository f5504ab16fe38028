// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator

import "fmt"

// Code identifies a terminal error class in the validation taxonomy. Codes
// are stable wire strings shared across adapters.
type Code string

const (
	// CodeInvalidInput marks a malformed URL, absent host, or malformed
	// runtime fingerprint. Raised before any network I/O.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeUnknownType marks a non-https scheme or an unparsable certificate
	// container.
	CodeUnknownType Code = "UNKNOWN_TYPE"

	// CodeNoPinningConfig marks a host that is not excluded and has neither
	// fingerprint nor certificate anchors.
	CodeNoPinningConfig Code = "NO_PINNING_CONFIG"

	// CodeCertNotFound marks certificate-mode anchors that are configured
	// but none loadable. Checked before probing.
	CodeCertNotFound Code = "CERT_NOT_FOUND"

	// CodeTrustEvaluationFailed marks a certificate-mode comparison that
	// could not be performed.
	CodeTrustEvaluationFailed Code = "TRUST_EVALUATION_FAILED"

	// CodeNetworkError marks a DNS, connect, or handshake failure during
	// the probe.
	CodeNetworkError Code = "NETWORK_ERROR"

	// CodeTimeout marks a handshake that did not complete within the
	// 10-second deadline.
	CodeTimeout Code = "TIMEOUT"

	// CodeInitFailed marks an unexpected internal failure, such as a server
	// presenting no certificate.
	CodeInitFailed Code = "INIT_FAILED"
)

// StructuralError is the error arm of the core boundary sum type. Only
// structural and configuration problems detected before the handshake attempt
// begins are reported this way; everything else resolves to a [Result].
// Adapters choose how to surface it (throw, reject, or return).
type StructuralError struct {
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	return fmt.Sprintf("validator: %s: %s", e.Code, e.Message)
}

// structural builds a StructuralError with a formatted message.
func structural(code Code, format string, args ...any) *StructuralError {
	return &StructuralError{Code: code, Message: fmt.Sprintf(format, args...)}
}
