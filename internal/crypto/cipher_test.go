package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/mlvd/authgate/internal/errs"
)

const rawKey = "0123456789abcdef0123456789abcdef" // 32 bytes

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec(rawKey)
	for _, pt := range []string{"p", "p@ssw0rd", "пароль", strings.Repeat("x", 300)} {
		env, err := c.Encrypt(pt)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", pt, err)
		}
		got, ok := c.Decrypt(env)
		if !ok {
			t.Fatalf("Decrypt(%q) not ok", env)
		}
		if got != pt {
			t.Fatalf("round trip: got %q, want %q", got, pt)
		}
	}
}

func TestCodec_EnvelopeShape(t *testing.T) {
	t.Parallel()

	c := NewCodec(rawKey)
	env, err := c.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	parts := strings.Split(env, ":")
	if len(parts) != 3 {
		t.Fatalf("envelope has %d parts, want 3: %q", len(parts), env)
	}
	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != 12 {
		t.Fatalf("iv: %v len=%d", err, len(iv))
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != 16 {
		t.Fatalf("tag: %v len=%d", err, len(tag))
	}
	ct, err := hex.DecodeString(parts[2])
	if err != nil || len(ct) != len("secret") {
		t.Fatalf("ciphertext: %v len=%d", err, len(ct))
	}
}

func TestCodec_FreshIVPerCall(t *testing.T) {
	t.Parallel()

	c := NewCodec(rawKey)
	a, err := c.Encrypt("same")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	b, err := c.Encrypt("same")
	if err != nil {
		t.Fatalf("Encrypt(2): %v", err)
	}
	if a == b {
		t.Fatalf("two envelopes of the same plaintext are identical")
	}
	for _, env := range []string{a, b} {
		got, ok := c.Decrypt(env)
		if !ok || got != "same" {
			t.Fatalf("Decrypt(%q) = %q, %v", env, got, ok)
		}
	}
}

// flipHex replaces the first hex digit of s with a different one.
func flipHex(s string) string {
	r := "0"
	if s[0] == '0' {
		r = "1"
	}
	return r + s[1:]
}

func TestCodec_TamperRejected(t *testing.T) {
	t.Parallel()

	c := NewCodec(rawKey)
	env, err := c.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	parts := strings.Split(env, ":")

	tamperedTag := parts[0] + ":" + flipHex(parts[1]) + ":" + parts[2]
	if got, ok := c.Decrypt(tamperedTag); ok {
		t.Fatalf("tampered tag accepted, got %q", got)
	}

	tamperedCT := parts[0] + ":" + parts[1] + ":" + flipHex(parts[2])
	if got, ok := c.Decrypt(tamperedCT); ok {
		t.Fatalf("tampered ciphertext accepted, got %q", got)
	}

	tamperedIV := flipHex(parts[0]) + ":" + parts[1] + ":" + parts[2]
	if got, ok := c.Decrypt(tamperedIV); ok {
		t.Fatalf("tampered iv accepted, got %q", got)
	}
}

func TestCodec_DecryptMalformed(t *testing.T) {
	t.Parallel()

	c := NewCodec(rawKey)
	for _, env := range []string{
		"",
		"plaintext",
		"a:b",
		"a:b:c:d",
		"::",
		"aa::bb",
		"zz:aabbccddeeff00112233445566778899:aa", // bad hex iv
		"aabbccddeeff001122334455:xx:aa",         // bad hex tag
		"aabbccddeeff001122334455:aabbccddeeff00112233445566778899:qq",
	} {
		if got, ok := c.Decrypt(env); ok {
			t.Fatalf("Decrypt(%q) accepted, got %q", env, got)
		}
	}
}

func TestCodec_KeyMaterialEncodings(t *testing.T) {
	t.Parallel()

	key := []byte(rawKey)
	hexKey := hex.EncodeToString(key)
	b64Key := base64.StdEncoding.EncodeToString(key)

	ref := NewCodec(rawKey)
	env, err := ref.Encrypt("cross-encoding")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	for name, material := range map[string]string{
		"hex":    hexKey,
		"base64": b64Key,
		"raw":    rawKey,
	} {
		c := NewCodec(material)
		got, ok := c.Decrypt(env)
		if !ok || got != "cross-encoding" {
			t.Fatalf("%s key: Decrypt = %q, %v", name, got, ok)
		}
	}
}

func TestCodec_MissingOrInvalidKey(t *testing.T) {
	t.Parallel()

	for _, material := range []string{"", "short", strings.Repeat("x", 33), "not-hex-" + strings.Repeat("g", 56)} {
		c := NewCodec(material)
		if _, err := c.Encrypt("p"); !errors.Is(err, errs.ErrCipherKey) {
			t.Fatalf("material %q: want ErrCipherKey, got %v", material, err)
		}
		valid := NewCodec(rawKey)
		env, err := valid.Encrypt("p")
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		if got, ok := c.Decrypt(env); ok {
			t.Fatalf("material %q: keyless Decrypt accepted, got %q", material, got)
		}
	}
}

func TestRandBytes(t *testing.T) {
	t.Parallel()

	a, err := RandBytes(12)
	if err != nil {
		t.Fatalf("RandBytes: %v", err)
	}
	b, err := RandBytes(12)
	if err != nil {
		t.Fatalf("RandBytes(2): %v", err)
	}
	if len(a) != 12 || len(b) != 12 {
		t.Fatalf("bad lengths: %d %d", len(a), len(b))
	}
	if string(a) == string(b) {
		t.Fatalf("two subsequent RandBytes(12) are equal")
	}
}
