package gimli

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// selfTestVector is a literal hash test vector, checked by SelfTest.
type selfTestVector struct {
	input string // ASCII input
	want  string // expected hex digest, 32 bytes
}

// hashSelfTestVectors are fixed input/digest pairs checked on every run.
var hashSelfTestVectors = []selfTestVector{
	{
		input: "",
		want:  "b0634b2c0b082aedc5c0a2fe4ee3adcfc989ec05de6f00addb04b3aaac271f67",
	},
	{
		input: "Speak words we can all understand!",
		want:  "8dd4d132059b72f8e8493f9afb86c6d86263e7439fc64cbb361fcbccf8b01267",
	},
	{
		input: "There's plenty for the both of us, may the best Dwarf win.",
		want:  "4afb3ff784c7ad6943d49cf5da79facfa7c4434e1ce44f5dd4b28f91a84d22c8",
	},
	{
		input: "If anyone was to ask for my opinion, which I note they're not, I'd say we were taking the long way around.",
		want:  "ba82a16a7b224c15bed8e8bdc88903a4006bc7beda78297d96029203ef08e07c",
	},
}

// SelfTest re-derives the known-answer hash vectors and performs one
// fixed AEAD round-trip, returning a descriptive error on the first
// mismatch. It is pure and does no I/O.
func SelfTest() error {
	for _, v := range hashSelfTestVectors {
		got := Sum([]byte(v.input), 32)
		want, err := hex.DecodeString(v.want)
		if err != nil {
			return fmt.Errorf("gimli: selftest: bad vector: %w", err)
		}
		if !bytes.Equal(got, want) {
			return fmt.Errorf("gimli: selftest: hash(%q) = %x, want %x", v.input, got, want)
		}
	}

	var key [KeySize]byte
	var nonce [NonceSize]byte
	for i := range key {
		key[i] = byte(i)
	}
	for i := range nonce {
		nonce[i] = byte(i)
	}
	plaintext := []byte("Gimli self-test round-trip message")
	ad := []byte("self-test-ad")

	sealed := Seal(key, nonce, ad, plaintext)
	opened, err := Open(key, nonce, ad, sealed)
	if err != nil {
		return fmt.Errorf("gimli: selftest: AEAD round-trip failed: %w", err)
	}
	if !bytes.Equal(opened, plaintext) {
		return fmt.Errorf("gimli: selftest: AEAD round-trip mismatch")
	}
	return nil
}
