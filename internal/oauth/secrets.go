// Package oauth implements the token machinery of the mock identity
// provider: opaque secrets, PKCE verification, AADSTS-style error envelopes,
// JWT construction and the grant handlers behind the token endpoint.
package oauth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewOpaqueSecret returns a hex string of 2n characters from n random bytes.
// Authorization codes use n=16 which yields the 32-character codes clients
// observe on the redirect.
func NewOpaqueSecret(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform entropy source is broken;
		// nothing sensible can be served in that state.
		panic(err)
	}
	return hex.EncodeToString(buf)
}

// NewID returns a random v4 UUID string, used for jti and trace identifiers.
func NewID() string {
	return uuid.NewString()
}
