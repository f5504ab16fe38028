// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/domain"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/fingerprint"
)

// fp builds a distinct valid fingerprint from a single hex digit.
func fp(c string) string {
	return strings.Repeat(c, 64)
}

func TestIsExcluded(t *testing.T) {
	excluded := []string{"example.com", "internal.corp"}

	tests := []struct {
		name     string
		host     string
		expected bool
	}{
		{
			name:     "Exact Match",
			host:     "example.com",
			expected: true,
		},
		{
			name:     "Dot Subdomain",
			host:     "api.example.com",
			expected: true,
		},
		{
			name:     "Deep Subdomain",
			host:     "a.b.example.com",
			expected: true,
		},
		{
			name:     "Suffix Without Dot",
			host:     "notexample.com",
			expected: false,
		},
		{
			name:     "Case Insensitive",
			host:     "API.EXAMPLE.COM",
			expected: true,
		},
		{
			name:     "Unrelated Host",
			host:     "other.org",
			expected: false,
		},
		{
			name:     "Blank Host",
			host:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.IsExcluded(tt.host, excluded))
		})
	}
}

func TestResolveCertAnchors(t *testing.T) {
	certsByDomain := map[string][]string{
		"example.com":     {"A"},
		"api.example.com": {"B"},
	}
	globalCerts := []string{"C"}

	tests := []struct {
		name     string
		host     string
		expected []string
	}{
		{
			name:     "Most Specific Wins",
			host:     "api.example.com",
			expected: []string{"B"},
		},
		{
			name:     "Parent Domain Fallback",
			host:     "other.example.com",
			expected: []string{"A"},
		},
		{
			name:     "Subdomain Of Most Specific",
			host:     "v2.api.example.com",
			expected: []string{"B"},
		},
		{
			name:     "Global Fallback",
			host:     "unrelated.com",
			expected: []string{"C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ResolveCertAnchors(tt.host, certsByDomain, globalCerts)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveCertAnchorsDeterministic(t *testing.T) {
	// Resolution must never depend on map iteration order. Repeated runs
	// over a map with several candidate keys always pick the same winner:
	// longest suffix first, lexicographically smallest on equal length.
	certsByDomain := map[string][]string{
		"example.org":      {"SHORT"},
		"api.example.org":  {"LONG"},
		"ape.example.org":  {"OTHER"},
		"staging.corp.net": {"NOISE"},
	}

	for range 50 {
		got := domain.ResolveCertAnchors("v2.api.example.org", certsByDomain, nil)
		require.Equal(t, []string{"LONG"}, got)
	}
}

func TestResolveFingerprints(t *testing.T) {
	cfg := domain.Config{
		DefaultFingerprint:  fp("a"),
		DefaultFingerprints: []string{fp("b"), fp("c")},
	}

	t.Run("Runtime Takes Precedence", func(t *testing.T) {
		anchors, err := domain.ResolveFingerprints([]string{fp("d")}, cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{fp("d")}, anchors)
	})

	t.Run("Defaults Unified In Order", func(t *testing.T) {
		anchors, err := domain.ResolveFingerprints(nil, cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{fp("a"), fp("b"), fp("c")}, anchors)
	})

	t.Run("Duplicates Dropped After Normalization", func(t *testing.T) {
		upper := strings.ToUpper(fp("d"))
		anchors, err := domain.ResolveFingerprints([]string{fp("d"), upper}, cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{fp("d")}, anchors)
	})

	t.Run("Separators Normalized", func(t *testing.T) {
		spaced := fp("e")[:2] + ":" + fp("e")[2:]
		anchors, err := domain.ResolveFingerprints([]string{spaced}, cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{fp("e")}, anchors)
	})

	t.Run("Malformed Rejected", func(t *testing.T) {
		_, err := domain.ResolveFingerprints([]string{"nope"}, cfg)
		assert.ErrorIs(t, err, fingerprint.ErrLength)
	})
}

func TestResolve(t *testing.T) {
	t.Run("Excluded Short Circuits", func(t *testing.T) {
		cfg := domain.Config{
			DefaultFingerprint: fp("a"),
			ExcludedDomains:    []string{"example.com"},
		}

		decision, err := domain.Resolve("api.example.com", nil, cfg, nil)
		require.NoError(t, err)
		assert.True(t, decision.Excluded)
		assert.Empty(t, decision.Anchors.Fingerprints)
	})

	t.Run("Fingerprint Mode", func(t *testing.T) {
		cfg := domain.Config{DefaultFingerprint: fp("a")}

		decision, err := domain.Resolve("example.com", nil, cfg, nil)
		require.NoError(t, err)
		assert.False(t, decision.Excluded)
		assert.Equal(t, domain.ModeFingerprint, decision.Anchors.Mode)
		assert.Equal(t, []string{fp("a")}, decision.Anchors.Fingerprints)
	})

	t.Run("Certificate Mode", func(t *testing.T) {
		cfg := domain.Config{
			CertsByDomain: map[string][]string{"example.com": {"pinned.pem"}},
		}
		resolver := func(ids []string) ([]string, error) {
			require.Equal(t, []string{"pinned.pem"}, ids)
			return []string{fp("b")}, nil
		}

		decision, err := domain.Resolve("api.example.com", nil, cfg, resolver)
		require.NoError(t, err)
		assert.Equal(t, domain.ModeCertificate, decision.Anchors.Mode)
		assert.Equal(t, []string{fp("b")}, decision.Anchors.Fingerprints)
	})

	t.Run("No Pinning Config", func(t *testing.T) {
		_, err := domain.Resolve("example.com", nil, domain.Config{}, nil)
		assert.ErrorIs(t, err, domain.ErrNoPinningConfig)
	})

	t.Run("Cert Resolver Error Propagates", func(t *testing.T) {
		cfg := domain.Config{GlobalCerts: []string{"missing.pem"}}
		resolver := func(ids []string) ([]string, error) {
			return nil, domain.ErrCertNotFound
		}

		_, err := domain.Resolve("example.com", nil, cfg, resolver)
		assert.True(t, errors.Is(err, domain.ErrCertNotFound))
	})
}
