// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/validator"
)

func TestSplitTarget(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantHost string
		wantPort string
	}{
		{
			name:     "Bare Host",
			target:   "example.com",
			wantHost: "example.com",
			wantPort: "",
		},
		{
			name:     "Host With Port",
			target:   "example.com:8443",
			wantHost: "example.com",
			wantPort: "8443",
		},
		{
			name:     "Trailing Colon",
			target:   "example.com:",
			wantHost: "example.com",
			wantPort: "",
		},
		{
			name:     "IPv6 With Port",
			target:   "[::1]:8443",
			wantHost: "::1",
			wantPort: "8443",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port := splitTarget(tt.target)
			assert.Equal(t, tt.wantHost, host)
			assert.Equal(t, tt.wantPort, port)
		})
	}
}

func TestRenderResultTable(t *testing.T) {
	result := &validator.Result{
		ActualFingerprint:  strings.Repeat("a", 64),
		FingerprintMatched: true,
		MatchedFingerprint: strings.Repeat("a", 64),
		Mode:               validator.ModeFingerprint,
	}

	out := renderResultTable(result)

	assert.Contains(t, out, "mode")
	assert.Contains(t, out, "fingerprint")
	assert.Contains(t, out, "fingerprintMatched")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, strings.Repeat("a", 64))
	assert.NotContains(t, out, "excludedDomain", "absent optional fields stay out of the table")
	assert.NotContains(t, out, "errorCode")
}

func TestRenderResultTableResolvedError(t *testing.T) {
	result := &validator.Result{
		FingerprintMatched: false,
		Mode:               validator.ModeFingerprint,
		Error:              "connection refused",
		ErrorCode:          validator.CodeNetworkError,
	}

	out := renderResultTable(result)

	assert.Contains(t, out, "NETWORK_ERROR")
	assert.Contains(t, out, "connection refused")
	assert.NotContains(t, out, "actualFingerprint")
}

func TestRenderResultTableExcluded(t *testing.T) {
	result := &validator.Result{
		ActualFingerprint:  strings.Repeat("b", 64),
		FingerprintMatched: true,
		ExcludedDomain:     true,
		Mode:               validator.ModeExcluded,
	}

	out := renderResultTable(result)

	assert.Contains(t, out, "excluded")
	assert.Contains(t, out, "excludedDomain")
	assert.NotContains(t, out, "matchedFingerprint")
}
