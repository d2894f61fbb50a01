// Package kdf is a small key-stretching convenience built on top of the
// Gimli sponge hash rather than a second primitive: callers that need a
// domain-separated subkey derive it straight from the hash instead of
// pulling in SHA3 or HMAC.
package kdf

import "github.com/gimli-crypto/gimli/gimli"

// Derive stretches secret into n bytes of key material, domain-separated
// by info (e.g. "encryption-key", "mac-key"). It absorbs info||secret
// through the Gimli sponge and squeezes out n bytes.
//
// This is a convenience, not a standalone KDF construction: callers
// needing a vetted password-hashing or HKDF-style derivation should use
// a purpose-built library instead.
func Derive(secret, info []byte, n int) []byte {
	buf := make([]byte, 0, len(info)+len(secret))
	buf = append(buf, info...)
	buf = append(buf, secret...)
	return gimli.Sum(buf, n)
}
