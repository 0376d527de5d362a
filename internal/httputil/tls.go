// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http"
)

// IsTLSError reports whether err (usually a *url.Error from client.Do)
// was caused by certificate verification or the TLS handshake.
func IsTLSError(err error) bool {
	if err == nil {
		return false
	}

	var (
		verifyErr   *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		alertErr    tls.AlertError
		unknownAuth x509.UnknownAuthorityError
		hostErr     x509.HostnameError
		invalidErr  x509.CertificateInvalidError
	)
	return errors.As(err, &verifyErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &alertErr) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr)
}

// WithoutVerification returns a copy of c whose transport skips TLS
// certificate verification. The original client is left untouched.
func WithoutVerification(c *http.Client) *http.Client {
	var base *http.Transport
	if t, ok := c.Transport.(*http.Transport); ok && t != nil {
		base = t.Clone()
	} else {
		base = http.DefaultTransport.(*http.Transport).Clone()
	}
	if base.TLSClientConfig == nil {
		base.TLSClientConfig = &tls.Config{}
	}
	base.TLSClientConfig.InsecureSkipVerify = true

	clone := *c
	clone.Transport = base
	return &clone
}
