// Package crypto implements reversible credential protection and verification.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/mlvd/authgate/internal/errs"
)

const (
	keyLen   = 32
	nonceLen = 12
	tagLen   = 16
)

// Codec seals and opens credential envelopes under a fixed AES-256 key.
// The key is parsed once at construction and never mutated, so a single codec
// is safe for concurrent use. Invalid key material is reported on the first
// Encrypt or Decrypt, not at construction.
type Codec struct {
	key []byte
}

// NewCodec parses key material and returns a codec. Accepted encodings, tried
// in order: 64 hex characters, base64 decoding to 32 bytes, raw 32-byte text.
// Material matching none of them leaves the codec keyless; Encrypt then fails
// with errs.ErrCipherKey and Decrypt reports no match.
func NewCodec(material string) *Codec {
	return &Codec{key: parseKey(material)}
}

func parseKey(material string) []byte {
	if material == "" {
		return nil
	}
	if len(material) == keyLen*2 {
		if k, err := hex.DecodeString(material); err == nil {
			return k
		}
	}
	if k, err := base64.StdEncoding.DecodeString(material); err == nil && len(k) == keyLen {
		return k
	}
	if len(material) == keyLen {
		return []byte(material)
	}
	return nil
}

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// Encrypt seals plaintext into an iv:tag:ciphertext envelope with each part
// hex-encoded. A fresh 12-byte IV is drawn per call, so two encryptions of
// the same plaintext produce different envelopes.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	aead, err := c.aead()
	if err != nil {
		return "", err
	}
	iv, err := RandBytes(nonceLen)
	if err != nil {
		return "", err
	}
	sealed := aead.Seal(nil, iv, []byte(plaintext), nil)
	// Seal appends the 16-byte auth tag after the ciphertext.
	ct, tag := sealed[:len(sealed)-tagLen], sealed[len(sealed)-tagLen:]
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(tag) + ":" + hex.EncodeToString(ct), nil
}

// Decrypt opens an envelope produced by Encrypt. It reports ok=false on a
// malformed envelope, invalid hex, tag mismatch, or missing key. It never
// returns an error: envelopes arrive from attacker-controlled credential
// comparisons and a failed open simply means "does not match".
func (c *Codec) Decrypt(envelope string) (string, bool) {
	aead, err := c.aead()
	if err != nil {
		return "", false
	}
	parts := strings.Split(envelope, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return "", false
	}
	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != nonceLen {
		return "", false
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != tagLen {
		return "", false
	}
	ct, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", false
	}
	plaintext, err := aead.Open(nil, iv, append(ct, tag...), nil)
	if err != nil {
		return "", false
	}
	return string(plaintext), true
}

func (c *Codec) aead() (cipher.AEAD, error) {
	if len(c.key) != keyLen {
		return nil, errs.ErrCipherKey
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
