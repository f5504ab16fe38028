// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/domain"
	"github.com/H0llyW00dzZ/tls-cert-pinning-validator/src/internal/pinning/fingerprint"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// EnvConfigFile is the environment variable consulted when no explicit
// configuration path is given.
const EnvConfigFile = "PINNING_CONFIG_FILE"

// Pinning is the externally supplied, read-only pinning configuration.
// Domains are stored lowercase without scheme; fingerprints are stored in
// canonical normalized form. Once loaded, a Pinning value is never mutated,
// which makes it safe to share across concurrent validation attempts.
type Pinning struct {
	// DefaultFingerprint is the single-fingerprint configuration form.
	DefaultFingerprint string `json:"defaultFingerprint,omitempty" yaml:"defaultFingerprint,omitempty"`

	// DefaultFingerprints is the multi-fingerprint configuration form.
	DefaultFingerprints []string `json:"defaultFingerprints,omitempty" yaml:"defaultFingerprints,omitempty"`

	// CertsByDomain maps a domain (lowercase, no scheme) to the ordered
	// bundled-certificate identifiers pinned for it.
	CertsByDomain map[string][]string `json:"certsByDomain,omitempty" yaml:"certsByDomain,omitempty"`

	// GlobalCerts are the bundled-certificate identifiers used when no
	// CertsByDomain key matches a host.
	GlobalCerts []string `json:"globalCerts,omitempty" yaml:"globalCerts,omitempty"`

	// ExcludedDomains lists hosts (and their subdomains) that bypass
	// pinning and rely on system trust.
	ExcludedDomains []string `json:"excludedDomains,omitempty" yaml:"excludedDomains,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file
// extension, using case-insensitive matching for cross-platform behavior.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, cfg *Pinning, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads, schema-checks, and validates a pinning configuration.
//
// Configuration priority:
//  1. The explicit configPath argument.
//  2. The PINNING_CONFIG_FILE environment variable when configPath is empty.
//
// The file format is detected from the extension (.json, .yaml, .yml). The
// raw document is checked against the embedded JSON Schema, parsed, and then
// normalized: domains are lowercased and trimmed, and every fingerprint is
// verified to normalize to 64 lowercase hex characters. Loading fails fast on
// the first malformed anchor; the engine never silently accepts one.
func Load(configPath string) (*Pinning, error) {
	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}
	if configPath == "" {
		return &Pinning{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read config file: %w", err)
	}

	format := detectConfigFormat(configPath)

	if err := validateSchema(data, format); err != nil {
		return nil, err
	}

	cfg := &Pinning{}
	if err := unmarshalConfig(data, cfg, format); err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize canonicalizes domains and fingerprints in place and rejects
// malformed anchors.
func (p *Pinning) normalize() error {
	if p.DefaultFingerprint != "" {
		if err := fingerprint.Validate(p.DefaultFingerprint); err != nil {
			return fmt.Errorf("config: defaultFingerprint: %w", err)
		}
		p.DefaultFingerprint = fingerprint.Normalize(p.DefaultFingerprint)
	}

	for i, fp := range p.DefaultFingerprints {
		if err := fingerprint.Validate(fp); err != nil {
			return fmt.Errorf("config: defaultFingerprints[%d]: %w", i, err)
		}
		p.DefaultFingerprints[i] = fingerprint.Normalize(fp)
	}

	if len(p.CertsByDomain) > 0 {
		canonical := make(map[string][]string, len(p.CertsByDomain))
		for key, ids := range p.CertsByDomain {
			host := domain.CanonicalHost(key)
			if host == "" {
				return fmt.Errorf("config: certsByDomain has a blank domain key")
			}
			canonical[host] = ids
		}
		p.CertsByDomain = canonical
	}

	for i, entry := range p.ExcludedDomains {
		p.ExcludedDomains[i] = domain.CanonicalHost(entry)
	}

	return nil
}

// Domain converts the configuration to the read-only view the domain
// matcher consumes.
func (p *Pinning) Domain() domain.Config {
	return domain.Config{
		DefaultFingerprint:  p.DefaultFingerprint,
		DefaultFingerprints: p.DefaultFingerprints,
		CertsByDomain:       p.CertsByDomain,
		GlobalCerts:         p.GlobalCerts,
		ExcludedDomains:     p.ExcludedDomains,
	}
}
