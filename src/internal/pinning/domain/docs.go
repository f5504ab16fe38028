// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package domain selects the effective trust-anchor set for a host before any
// network I/O happens. It implements the exclusion check (exact or
// dot-subdomain match against the excluded-domain list) and the anchor
// precedence rules: runtime fingerprints over configured defaults, exact
// certificate-domain keys over longest-suffix subdomain keys over the global
// certificate fallback. All decisions are deterministic and free of side
// effects, which keeps them directly testable.
package domain
