package crypto

import (
	"crypto/subtle"
	"strings"
)

// Equals reports whether a and b are byte-identical. Differing lengths return
// immediately; equal-length inputs are compared in constant time.
func Equals(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// looksLikeEnvelope reports whether stored has the three-part envelope shape.
// A string matching the shape but failing to open is a rejected envelope,
// never legacy plaintext.
func looksLikeEnvelope(stored string) bool {
	parts := strings.Split(stored, ":")
	return len(parts) == 3 && parts[0] != "" && parts[1] != "" && parts[2] != ""
}

// Verify checks plaintext against a stored credential. Envelopes are
// decrypted and compared; any other shape is compared directly as a legacy
// plaintext credential, so rows created before encryption keep working
// without a migration.
func (c *Codec) Verify(plaintext, stored string) bool {
	if stored == "" {
		return false
	}
	if looksLikeEnvelope(stored) {
		decrypted, ok := c.Decrypt(stored)
		if !ok {
			return false
		}
		return Equals(plaintext, decrypted)
	}
	return Equals(plaintext, stored)
}
