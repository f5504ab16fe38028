// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"crypto/x509"
	"fmt"
	"os"
	"path/filepath"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/domain"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/fingerprint"
	x509certs "github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/x509/certs"
)

// CertStore resolves bundled-certificate identifiers to anchor fingerprints.
// Identifiers are file names (relative to the bundle directory) or absolute
// paths; each file may carry a PEM, DER, or PKCS7 certificate bundle.
//
// A CertStore performs reads only and is safe for concurrent use.
type CertStore struct {
	dir     string
	decoder *x509certs.Decoder
}

// NewCertStore creates a certificate store rooted at the bundle directory.
func NewCertStore(dir string) *CertStore {
	return &CertStore{
		dir:     dir,
		decoder: x509certs.NewDecoder(),
	}
}

// ResolveFingerprints loads the certificates behind ids and returns their
// canonical fingerprints, preserving identifier order. Identifiers that fail
// to load are skipped; when every identifier fails the result wraps
// [domain.ErrCertNotFound] so the validator reports CERT_NOT_FOUND before
// probing.
func (s *CertStore) ResolveFingerprints(ids []string) ([]string, error) {
	var anchors []string
	var lastErr error

	for _, id := range ids {
		certs, err := s.load(id)
		if err != nil {
			lastErr = err
			continue
		}
		for _, cert := range certs {
			anchors = append(anchors, fingerprint.FromCertificate(cert))
		}
	}

	if len(anchors) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCertNotFound, lastErr)
		}
		return nil, domain.ErrCertNotFound
	}

	return anchors, nil
}

// load reads and decodes one bundled certificate file.
func (s *CertStore) load(id string) ([]*x509.Certificate, error) {
	path := id
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, id)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: certificate %q: %w", id, err)
	}
	defer f.Close()

	data, err := gc.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("config: certificate %q: %w", id, err)
	}

	certs, err := s.decoder.DecodeBundle(data)
	if err != nil {
		return nil, fmt.Errorf("config: certificate %q: %w", id, err)
	}

	return certs, nil
}
