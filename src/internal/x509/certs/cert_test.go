// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509certs "github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/x509/certs"
)

// newTestCert generates a throwaway self-signed certificate.
func newTestCert(t *testing.T, commonName string) *x509.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert
}

func TestDecoderOperations(t *testing.T) {
	decoder := x509certs.NewDecoder()
	cert := newTestCert(t, "anchor.example.com")

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Decode DER",
			testFunc: func(t *testing.T) {
				decoded, err := decoder.Decode(cert.Raw)
				require.NoError(t, err, "Decode() error")

				assert.True(t, cert.Equal(decoded), "original and decoded certificates are not equal")
			},
		},
		{
			name: "Decode PEM",
			testFunc: func(t *testing.T) {
				pemData := decoder.EncodePEM(cert)
				require.True(t, decoder.IsPEM(pemData))

				decoded, err := decoder.Decode(pemData)
				require.NoError(t, err, "Decode() error")

				assert.Equal(t, "anchor.example.com", decoded.Subject.CommonName)
			},
		},
		{
			name: "Decode Rejects Wrong Block Type",
			testFunc: func(t *testing.T) {
				block := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: cert.Raw})

				_, err := decoder.Decode(block)
				assert.ErrorIs(t, err, x509certs.ErrInvalidBlockType)
			},
		},
		{
			name: "Decode Rejects Garbage",
			testFunc: func(t *testing.T) {
				_, err := decoder.Decode([]byte("not a certificate"))
				assert.Error(t, err)
			},
		},
		{
			name: "DecodeBundle Multiple PEM Blocks",
			testFunc: func(t *testing.T) {
				second := newTestCert(t, "second.example.com")
				bundle := append(decoder.EncodePEM(cert), decoder.EncodePEM(second)...)

				certs, err := decoder.DecodeBundle(bundle)
				require.NoError(t, err, "DecodeBundle() error")

				require.Len(t, certs, 2, "expected 2 certificates")
				assert.Equal(t, "anchor.example.com", certs[0].Subject.CommonName)
				assert.Equal(t, "second.example.com", certs[1].Subject.CommonName)
			},
		},
		{
			name: "DecodeBundle Raw DER",
			testFunc: func(t *testing.T) {
				certs, err := decoder.DecodeBundle(cert.Raw)
				require.NoError(t, err, "DecodeBundle() error")

				require.Len(t, certs, 1)
				assert.True(t, cert.Equal(certs[0]))
			},
		},
		{
			name: "DecodeBundle Empty PEM",
			testFunc: func(t *testing.T) {
				_, err := decoder.DecodeBundle([]byte("-----BEGIN CERTIFICATE-----\n-----END CERTIFICATE-----\n"))
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
