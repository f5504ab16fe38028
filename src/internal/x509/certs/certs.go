// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

// Decoder decodes anchor certificates from the on-disk containers a pinning
// bundle may carry.
type Decoder struct {
	certBlockType string
}

// NewDecoder creates a Decoder with default settings.
func NewDecoder() *Decoder {
	return &Decoder{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode decodes a single anchor certificate from data, trying PEM first,
// then DER, then PKCS7.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	if d.IsPEM(data) {
		block, _ := pem.Decode(data)
		if block.Type != d.certBlockType {
			return nil, ErrInvalidBlockType
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeBundle decodes every anchor certificate in data. PEM bundles may
// carry multiple CERTIFICATE blocks; raw data is parsed as concatenated DER.
func (d *Decoder) DecodeBundle(data []byte) ([]*x509.Certificate, error) {
	if !d.IsPEM(data) {
		certs, err := x509.ParseCertificates(data)
		if err != nil {
			// Single-certificate PKCS7 bundles land here.
			cert, perr := d.Decode(data)
			if perr != nil {
				return nil, ErrParseCertificate
			}
			return []*x509.Certificate{cert}, nil
		}
		return certs, nil
	}

	var certs []*x509.Certificate
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != d.certBlockType {
			return nil, ErrInvalidBlockType
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, ErrParseCertificate
		}

		certs = append(certs, cert)
		data = rest
	}

	if len(certs) == 0 {
		return nil, ErrInvalidPEMBlock
	}

	return certs, nil
}

// EncodePEM encodes a certificate to PEM format.
func (d *Decoder) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  d.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}
