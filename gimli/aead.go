package gimli

// initState installs key and nonce and absorbs associated data,
// returning the initialized duplex state shared by encrypt and decrypt.
// The final short (possibly empty) AD block is always padded and
// permuted, even when len(ad) is a multiple of 16 — this is what keeps
// encryption and decryption in lockstep regardless of AD length mod 16.
func initState(key [KeySize]byte, nonce [NonceSize]byte, ad []byte) *State {
	s := &State{}
	s.installKeyNonce(key, nonce)
	Permute(s)

	for len(ad) >= RateBytes {
		s.xorRatePrefix(ad[:RateBytes])
		Permute(s)
		ad = ad[RateBytes:]
	}
	s.xorRatePrefix(ad)
	s.xorByteAt(len(ad), aeadDomainByte)
	s.xorByteAt(StateBytes-1, aeadDomainByte)
	Permute(s)
	return s
}

// Seal encrypts plaintext under key, nonce, and associated data ad,
// returning ciphertext||tag. len(result) == len(plaintext) + TagSize
// always, including for an empty plaintext.
func Seal(key [KeySize]byte, nonce [NonceSize]byte, ad, plaintext []byte) []byte {
	s := initState(key, nonce, ad)
	out := make([]byte, 0, len(plaintext)+TagSize)

	msg := plaintext
	for len(msg) >= RateBytes {
		out = append(out, s.xorRatePrefix(msg[:RateBytes])...)
		Permute(s)
		msg = msg[RateBytes:]
	}
	out = append(out, s.xorRatePrefix(msg)...)
	s.xorByteAt(len(msg), aeadDomainByte)
	s.xorByteAt(StateBytes-1, aeadDomainByte)
	Permute(s)

	out = append(out, s.Rate()...)
	return out
}

// Open decrypts ciphertextAndTag (message ciphertext followed by a
// TagSize-byte tag) under key, nonce, and associated data ad.
//
// Tag verification is constant-time: every ciphertext/tag byte
// contributes to the comparison regardless of where the first mismatch
// occurs, and on failure no plaintext byte is returned non-zero (see
// verifyTag). ErrCiphertextTooShort is returned without touching the
// state at all when there are fewer than TagSize input bytes.
func Open(key [KeySize]byte, nonce [NonceSize]byte, ad, ciphertextAndTag []byte) ([]byte, error) {
	if len(ciphertextAndTag) < TagSize {
		return nil, ErrCiphertextTooShort
	}
	msgLen := len(ciphertextAndTag) - TagSize
	cipher := ciphertextAndTag[:msgLen]
	tag := ciphertextAndTag[msgLen:]

	s := initState(key, nonce, ad)
	out := make([]byte, 0, msgLen)

	for len(cipher) >= RateBytes {
		out = append(out, s.setRatePrefix(cipher[:RateBytes])...)
		Permute(s)
		cipher = cipher[RateBytes:]
	}
	out = append(out, s.setRatePrefix(cipher)...)
	s.xorByteAt(len(cipher), aeadDomainByte)
	s.xorByteAt(StateBytes-1, aeadDomainByte)
	Permute(s)

	ok := verifyTag(s, tag, out)
	if !ok {
		return nil, ErrAuthFailure
	}
	return out, nil
}

// verifyTag compares tag against the state's rate bytes by
// accumulating the XOR of every byte pair into diff, then applies a
// mask derived from diff to every byte of plaintext in place. It must
// not short-circuit on the first differing byte: every iteration of
// the loop executes regardless of earlier results.
func verifyTag(s *State, tag []byte, plaintext []byte) bool {
	rate := s.Rate()
	var diff uint32
	for i := 0; i < TagSize; i++ {
		diff |= uint32(tag[i] ^ rate[i])
	}
	mask := byte((diff - 1) >> 16)
	for i := range plaintext {
		plaintext[i] &= mask
	}
	return mask != 0
}
