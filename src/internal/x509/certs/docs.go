// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes locally bundled anchor certificates for the
// pinning validator. It accepts [PEM], DER, and [PKCS7] containers so anchor
// bundles exported from different platforms all resolve to the same parsed
// [X.509] certificates, and provides PEM encoding for the developer-facing
// fingerprint tooling.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
