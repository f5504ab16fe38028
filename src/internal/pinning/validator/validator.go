// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package validator

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/domain"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/fingerprint"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/probe"
)

// HandshakeTimeout is the fixed deadline for one probe. It is a protocol
// parameter, not a tunable: the public API does not expose it.
const HandshakeTimeout = 10 * time.Second

// CertResolver maps configured certificate identifiers to fingerprint
// anchors. Errors wrapping [domain.ErrCertNotFound] surface as CERT_NOT_FOUND;
// any other error surfaces as TRUST_EVALUATION_FAILED.
type CertResolver func(ids []string) ([]string, error)

// Request describes one validation invocation. Requests are constructed per
// call and never retained.
type Request struct {
	// URL must parse as https; anything else is rejected before probing.
	URL string

	// RuntimeFingerprints take precedence over configuration defaults when
	// present.
	RuntimeFingerprints []string
}

// Validator coordinates the domain matcher, the certificate probe, and the
// fingerprint canonicalizer under a deadline race. A Validator is safe for
// concurrent use: each attempt owns its own connection, timer, and result
// exclusively, and the shared configuration is read-only.
type Validator struct {
	probe        *probe.Probe
	certResolver CertResolver

	// timeout is HandshakeTimeout in production; white-box tests shorten it.
	timeout time.Duration
}

// New creates a Validator. certResolver may be nil when only fingerprint
// anchors and exclusions are in play.
func New(p *probe.Probe, certResolver CertResolver) *Validator {
	return &Validator{
		probe:        p,
		certResolver: certResolver,
		timeout:      HandshakeTimeout,
	}
}

// probeOutcome carries the probe result across the deadline race.
type probeOutcome struct {
	leaf *probe.Leaf
	err  error
}

// Validate runs one validation attempt and resolves it exactly once.
//
// It returns (*Result, nil) for every outcome after the handshake attempt
// begins (match, mismatch, timeout, network failure), and
// (nil, *StructuralError) only for structurally invalid input or
// configuration detected before any network I/O.
func (v *Validator) Validate(ctx context.Context, req Request, cfg domain.Config) (*Result, error) {
	host, port, serr := parseTarget(req.URL)
	if serr != nil {
		return nil, serr
	}

	decision, serr := v.resolve(host, req.RuntimeFingerprints, cfg)
	if serr != nil {
		return nil, serr
	}

	mode := ModeFingerprint
	if decision.Excluded {
		mode = ModeExcluded
	}

	// Arm the race: probe completion against the one-shot deadline timer.
	// Whichever side wins the CAS on claimed owns the terminal result; the
	// loser's late completion is a no-op.
	probeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var claimed atomic.Bool
	outcome := make(chan probeOutcome, 1)

	go func() {
		leaf, err := v.probe.Leaf(probeCtx, host, port, decision.Excluded)
		if !claimed.CompareAndSwap(false, true) {
			return
		}
		outcome <- probeOutcome{leaf: leaf, err: err}
	}()

	timer := time.NewTimer(v.timeout)
	defer timer.Stop()

	select {
	case o := <-outcome:
		return v.completed(o, decision, mode), nil
	case <-timer.C:
		if claimed.CompareAndSwap(false, true) {
			// Invalidate the in-flight connection instead of abandoning
			// it, so the socket is released promptly.
			cancel()
			return &Result{
				FingerprintMatched: false,
				ExcludedDomain:     decision.Excluded,
				Mode:               mode,
				Error:              "TLS handshake did not complete within the deadline",
				ErrorCode:          CodeTimeout,
			}, nil
		}
		// The probe won the claim between the timer firing and our CAS;
		// its outcome is already buffered.
		return v.completed(<-outcome, decision, mode), nil
	}
}

// completed builds the terminal Result for a probe that resolved before the
// deadline, whether the handshake succeeded or not.
func (v *Validator) completed(o probeOutcome, decision domain.Decision, mode Mode) *Result {
	if o.err != nil {
		code := CodeNetworkError
		if errors.Is(o.err, probe.ErrNoPeerCertificates) {
			code = CodeInitFailed
		}
		return &Result{
			FingerprintMatched: false,
			ExcludedDomain:     decision.Excluded,
			Mode:               mode,
			Error:              o.err.Error(),
			ErrorCode:          code,
		}
	}

	actual := fingerprint.Normalize(o.leaf.Fingerprint)

	if decision.Excluded {
		// Bypass path: no comparison. FingerprintMatched doubles as the
		// informational bypass indicator.
		return &Result{
			ActualFingerprint:  actual,
			FingerprintMatched: true,
			ExcludedDomain:     true,
			Mode:               ModeExcluded,
		}
	}

	result := &Result{
		ActualFingerprint: actual,
		Mode:              mode,
	}

	for _, anchor := range decision.Anchors.Fingerprints {
		if fingerprint.Normalize(anchor) != actual {
			continue
		}
		result.FingerprintMatched = true
		if decision.Anchors.Mode == domain.ModeFingerprint {
			result.MatchedFingerprint = anchor
		}
		break
	}

	// A mismatch is a resolved outcome: no error code is set.
	return result
}

// resolve runs the pre-network phase: exclusion check and anchor resolution.
// Its failures are the structural arm of the boundary sum type.
func (v *Validator) resolve(host string, runtimeFingerprints []string, cfg domain.Config) (domain.Decision, *StructuralError) {
	decision, err := domain.Resolve(host, runtimeFingerprints, cfg, v.resolveCerts)
	if err == nil {
		if !decision.Excluded && decision.Anchors.Mode == domain.ModeCertificate && len(decision.Anchors.Fingerprints) == 0 {
			return domain.Decision{}, structural(CodeTrustEvaluationFailed, "certificate anchors resolved to no comparable fingerprints for %q", host)
		}
		return decision, nil
	}

	switch {
	case errors.Is(err, domain.ErrNoPinningConfig):
		return domain.Decision{}, structural(CodeNoPinningConfig, "no fingerprints or certificates configured for %q", host)
	case errors.Is(err, domain.ErrCertNotFound):
		return domain.Decision{}, structural(CodeCertNotFound, "%v", err)
	case errors.Is(err, fingerprint.ErrBlank), errors.Is(err, fingerprint.ErrLength), errors.Is(err, fingerprint.ErrNotHex):
		return domain.Decision{}, structural(CodeInvalidInput, "%v", err)
	default:
		return domain.Decision{}, structural(CodeTrustEvaluationFailed, "%v", err)
	}
}

// resolveCerts adapts the configured CertResolver for the domain matcher.
func (v *Validator) resolveCerts(ids []string) ([]string, error) {
	if v.certResolver == nil {
		return nil, domain.ErrCertNotFound
	}
	return v.certResolver(ids)
}

// parseTarget validates the request URL and extracts the canonical host and
// port. Rejections here are the only ones allowed to skip the probe entirely.
func parseTarget(rawURL string) (host, port string, serr *StructuralError) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", "", structural(CodeInvalidInput, "url cannot be blank")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", "", structural(CodeInvalidInput, "malformed url %q: %v", rawURL, err)
	}

	if !strings.EqualFold(u.Scheme, "https") {
		return "", "", structural(CodeUnknownType, "scheme %q is not https", u.Scheme)
	}

	host = domain.CanonicalHost(u.Hostname())
	if host == "" {
		return "", "", structural(CodeInvalidInput, "url %q has no host", rawURL)
	}

	return host, u.Port(), nil
}
