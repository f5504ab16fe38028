// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domain

import (
	"errors"
	"strings"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/fingerprint"
)

var (
	// ErrNoPinningConfig indicates that, after exclusion was ruled out,
	// neither fingerprints nor certificates could be resolved for the host.
	ErrNoPinningConfig = errors.New("domain: no pinning configuration for host")

	// ErrCertNotFound indicates certificate anchors are configured for the
	// host but none of them could be loaded.
	ErrCertNotFound = errors.New("domain: configured certificates not found")
)

// Mode identifies the kind of anchors a TrustAnchorSet carries.
type Mode int

const (
	// ModeFingerprint means the anchors are SHA-256 leaf fingerprints
	// supplied at runtime or from configuration defaults.
	ModeFingerprint Mode = iota

	// ModeCertificate means the anchors were derived from locally bundled
	// certificates keyed by domain.
	ModeCertificate
)

// TrustAnchorSet is the resolved set of acceptable credentials for one
// validation attempt. It is created per call and never mutated afterwards.
type TrustAnchorSet struct {
	// Fingerprints holds normalized 64-hex-char anchors in insertion order,
	// deduplicated after normalization.
	Fingerprints []string

	// Mode records where the anchors came from.
	Mode Mode
}

// Decision is the outcome of resolving a host against the pinning
// configuration before the probe runs.
type Decision struct {
	// Excluded is true when the host bypasses pinning. No anchors are
	// computed, but the caller still performs a real handshake using system
	// trust so the response shape matches the pinned path.
	Excluded bool

	// Anchors is the effective trust-anchor set. Empty when Excluded.
	Anchors TrustAnchorSet
}

// Config is the read-only pinning configuration view this package consumes.
// Domains are expected lowercase without scheme; the config loader enforces
// that at load time.
type Config struct {
	DefaultFingerprint  string
	DefaultFingerprints []string
	CertsByDomain       map[string][]string
	GlobalCerts         []string
	ExcludedDomains     []string
}

// CanonicalHost lowercases and trims a host for comparison. All domain
// matching in this package operates on canonical hosts.
func CanonicalHost(host string) string {
	return strings.ToLower(strings.TrimSpace(host))
}

// IsExcluded reports whether host matches an excluded-domain entry, either
// exactly or as a dot-subdomain ("api.example.com" matches entry
// "example.com"; "notexample.com" does not). Comparison is case-insensitive.
func IsExcluded(host string, excluded []string) bool {
	h := CanonicalHost(host)
	if h == "" {
		return false
	}

	for _, entry := range excluded {
		e := CanonicalHost(entry)
		if e == "" {
			continue
		}
		if h == e || strings.HasSuffix(h, "."+e) {
			return true
		}
	}

	return false
}

// ResolveCertAnchors selects the certificate identifiers that apply to host.
//
// Precedence: an exact certsByDomain key wins; otherwise the longest key for
// which host is a dot-subdomain wins; otherwise globalCerts is the fallback.
// When two keys of equal maximum length both match, the lexicographically
// smallest key wins, so resolution never depends on map iteration order.
func ResolveCertAnchors(host string, certsByDomain map[string][]string, globalCerts []string) []string {
	h := CanonicalHost(host)

	if ids, ok := certsByDomain[h]; ok {
		return ids
	}

	var bestKey string
	for key := range certsByDomain {
		k := CanonicalHost(key)
		if !strings.HasSuffix(h, "."+k) {
			continue
		}
		if len(k) > len(bestKey) || (len(k) == len(bestKey) && (bestKey == "" || k < bestKey)) {
			bestKey = k
		}
	}

	if bestKey != "" {
		return certsByDomain[bestKey]
	}

	return globalCerts
}

// ResolveFingerprints unifies the runtime-supplied fingerprints with the
// configured defaults into one ordered anchor list. Runtime fingerprints take
// precedence: when any are supplied, the configuration defaults are ignored.
// Each anchor is normalized; duplicates after normalization are dropped while
// preserving first-seen order. Malformed anchors are rejected.
func ResolveFingerprints(runtime []string, cfg Config) ([]string, error) {
	candidates := runtime
	if len(candidates) == 0 {
		if cfg.DefaultFingerprint != "" {
			candidates = append(candidates, cfg.DefaultFingerprint)
		}
		candidates = append(candidates, cfg.DefaultFingerprints...)
	}

	seen := make(map[string]struct{}, len(candidates))
	anchors := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		if err := fingerprint.Validate(candidate); err != nil {
			return nil, err
		}

		normalized := fingerprint.Normalize(candidate)
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		anchors = append(anchors, normalized)
	}

	return anchors, nil
}

// Resolve decides the operating mode for host: exclusion first, then
// fingerprint anchors (runtime over defaults), then certificate anchors with
// domain precedence. It returns ErrNoPinningConfig when nothing applies.
//
// CertResolver maps certificate identifiers to fingerprint anchors; it is
// supplied by the caller so this package stays free of file I/O.
func Resolve(host string, runtimeFingerprints []string, cfg Config, certResolver func(ids []string) ([]string, error)) (Decision, error) {
	if IsExcluded(host, cfg.ExcludedDomains) {
		return Decision{Excluded: true}, nil
	}

	anchors, err := ResolveFingerprints(runtimeFingerprints, cfg)
	if err != nil {
		return Decision{}, err
	}
	if len(anchors) > 0 {
		return Decision{Anchors: TrustAnchorSet{Fingerprints: anchors, Mode: ModeFingerprint}}, nil
	}

	ids := ResolveCertAnchors(host, cfg.CertsByDomain, cfg.GlobalCerts)
	if len(ids) == 0 {
		return Decision{}, ErrNoPinningConfig
	}

	if certResolver == nil {
		return Decision{}, ErrNoPinningConfig
	}

	certAnchors, err := certResolver(ids)
	if err != nil {
		return Decision{}, err
	}

	return Decision{Anchors: TrustAnchorSet{Fingerprints: certAnchors, Mode: ModeCertificate}}, nil
}
