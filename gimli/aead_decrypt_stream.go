package gimli

type decryptPhase int

const (
	dPhaseNeedBlock decryptPhase = iota
	dPhaseVerify
	dPhaseDone
)

// Decryptor pulls ciphertext (followed by its 16-byte tag) from an
// underlying ByteProducer and yields verified plaintext one byte at a
// time. Unlike Encryptor, the final block's plaintext is held back
// until the tag has been read and checked: on authentication failure,
// Next reports ErrAuthFailure and no byte of the final block is ever
// handed to the caller, matching the one-shot Open's masking.
type Decryptor struct {
	state     State
	cipher    ByteProducer
	remaining int
	phase     decryptPhase
	outBuf    []byte
	outPos    int
	lastShort int
	pending   []byte // plaintext of the final block, held until verified
}

// NewDecryptor starts a streaming AEAD decryption of a ciphertext body
// of cipherLen bytes (not including the trailing tag) pulled from
// cipher, under key, nonce, and associated data ad.
//
// cipherLen is the caller-declared length of the ciphertext body alone
// (ciphertext total length minus TagSize); the caller is responsible for
// having already checked the total length against TagSize, exactly as
// Open does via ErrCiphertextTooShort — NewDecryptor itself has no
// length to validate against since it never sees the combined length.
func NewDecryptor(key [KeySize]byte, nonce [NonceSize]byte, ad []byte, cipher ByteProducer, cipherLen int) *Decryptor {
	s := initState(key, nonce, ad)
	return &Decryptor{
		state:     *s,
		cipher:    cipher,
		remaining: cipherLen,
		phase:     dPhaseNeedBlock,
	}
}

// Next yields the next verified plaintext byte. ok is false with err ==
// nil once all plaintext has been emitted; ok is false with err ==
// ErrAuthFailure if the tag didn't verify (no further plaintext is ever
// released in that case); ok is false with any other non-nil err on a
// read failure from the underlying producer.
func (d *Decryptor) Next() (b byte, err error, ok bool) {
	if d.outPos < len(d.outBuf) {
		b = d.outBuf[d.outPos]
		d.outPos++
		return b, nil, true
	}

	switch d.phase {
	case dPhaseNeedBlock:
		if d.remaining >= RateBytes {
			// A full block that ends the ciphertext body is the final
			// block: its plaintext is held in pending, and the
			// zero-length short block that follows adds nothing to it.
			block, err := pullExact(d.cipher, RateBytes)
			if err != nil {
				return 0, err, false
			}
			plain := d.state.setRatePrefix(block)
			Permute(&d.state)
			d.remaining -= RateBytes
			if d.remaining == 0 {
				d.pending = plain
			} else {
				d.outBuf = plain
				d.outPos = 0
			}
		} else {
			block, err := pullExact(d.cipher, d.remaining)
			if err != nil {
				return 0, err, false
			}
			d.pending = append(d.pending, d.state.setRatePrefix(block)...)
			d.lastShort = d.remaining
			d.remaining = 0
			d.phase = dPhaseVerify
		}

	case dPhaseVerify:
		d.state.xorByteAt(d.lastShort, aeadDomainByte)
		d.state.xorByteAt(StateBytes-1, aeadDomainByte)
		Permute(&d.state)

		tag, err := pullExact(d.cipher, TagSize)
		if err != nil {
			return 0, err, false
		}
		if !verifyTag(&d.state, tag, d.pending) {
			d.phase = dPhaseDone
			return 0, ErrAuthFailure, false
		}
		d.outBuf = d.pending
		d.outPos = 0
		d.phase = dPhaseDone

	case dPhaseDone:
		return 0, nil, false
	}

	if d.outPos >= len(d.outBuf) {
		return d.Next()
	}
	b = d.outBuf[d.outPos]
	d.outPos++
	return b, nil, true
}
