// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/fingerprint"
)

var (
	// ErrNoPeerCertificates indicates the server completed the handshake
	// without presenting any certificate.
	ErrNoPeerCertificates = errors.New("probe: no certificates received from server")

	// ErrDial indicates a DNS, TCP, or TLS handshake failure.
	ErrDial = errors.New("probe: connection failed")
)

// DefaultPort is used when the target URL carries no explicit port.
const DefaultPort = "443"

// Conn is the minimal surface the probe needs from a TLS connection. It is
// satisfied by [*tls.Conn] and by mock connections in tests, which lets tests
// assert that the connection is torn down exactly once.
type Conn interface {
	ConnectionState() tls.ConnectionState
	Close() error
}

// DialFunc establishes a TLS connection. The probe cancels the dial through
// ctx when the validation deadline fires.
type DialFunc func(ctx context.Context, network, addr string, cfg *tls.Config) (Conn, error)

// Leaf is the end-entity certificate presented by the server, together with
// its canonical fingerprint.
type Leaf struct {
	// Fingerprint is the SHA-256 digest of Raw, 64 lowercase hex characters.
	Fingerprint string

	// Raw is the DER encoding of the certificate as presented on the wire.
	Raw []byte

	// Certificate is the parsed leaf.
	Certificate *x509.Certificate
}

// Probe fetches leaf certificates. The zero value is not usable; construct
// with New or NewWithDialer.
type Probe struct {
	dial DialFunc
}

// New creates a Probe using the real TLS dialer.
func New() *Probe {
	return NewWithDialer(func(ctx context.Context, network, addr string, cfg *tls.Config) (Conn, error) {
		dialer := &tls.Dialer{NetDialer: &net.Dialer{}, Config: cfg}
		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		return conn.(*tls.Conn), nil
	})
}

// NewWithDialer creates a Probe with an injected dialer. Tests use this to
// supply a mock socket factory.
func NewWithDialer(dial DialFunc) *Probe {
	return &Probe{dial: dial}
}

// Leaf opens exactly one TLS connection to host:port, extracts the leaf
// certificate, and computes its fingerprint. The connection is closed
// unconditionally before Leaf returns, success or failure, so no session
// outlives the call.
//
// When systemTrust is false the handshake accepts any certificate chain:
// trust is asserted by the caller's anchor comparison, not by the probe.
// When systemTrust is true (excluded-domain bypass) the handshake verifies
// against the system trust store.
func (p *Probe) Leaf(ctx context.Context, host, port string, systemTrust bool) (*Leaf, error) {
	if port == "" {
		port = DefaultPort
	}

	cfg := &tls.Config{
		ServerName: host,
		// Inspection only: the presented certificate is authenticated
		// afterward by exact fingerprint comparison against the anchors.
		InsecureSkipVerify: !systemTrust,
	}

	conn, err := p.dial(ctx, "tcp", net.JoinHostPort(host, port), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s:%s: %v", ErrDial, host, port, err)
	}
	defer conn.Close()

	peerCerts := conn.ConnectionState().PeerCertificates
	if len(peerCerts) == 0 {
		return nil, ErrNoPeerCertificates
	}

	leaf := peerCerts[0]
	return &Leaf{
		Fingerprint: fingerprint.FromCertificate(leaf),
		Raw:         leaf.Raw,
		Certificate: leaf,
	}, nil
}
