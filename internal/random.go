// Package internal holds small shared helpers that must not become public
// API: opaque token generation for the verification and reset flows.
package internal

import (
	"crypto/rand"
	"encoding/base64"
)

// TokenBytes is the entropy of verification and reset tokens.
const TokenBytes = 32

// NewToken returns a URL-safe opaque token with TokenBytes of entropy,
// base64url-encoded without padding.
func NewToken() (string, error) {
	raw := make([]byte, TokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
