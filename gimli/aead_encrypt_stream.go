package gimli

// encryptPhase is the streaming encryptor's state machine: buffered
// output drains first, then the machine steps according to how much
// input remains.
type encryptPhase int

const (
	phaseNeedBlock encryptPhase = iota
	phaseFinalize
	phaseDone
)

// Encryptor pulls plaintext from an underlying ByteProducer and yields
// ciphertext followed by the 16-byte tag, one byte at a time. It
// performs exactly the same sequence of permutations and XORs as Seal
// for the same inputs, so the two must always agree byte for byte.
type Encryptor struct {
	state     State
	plaintext ByteProducer
	remaining int
	phase     encryptPhase
	outBuf    []byte
	outPos    int
	lastShort int
}

// NewEncryptor starts a streaming AEAD encryption of exactly
// plaintextLen bytes pulled from plaintext, under key, nonce, and
// associated data ad. ad must be fully available up front — only the
// message is streamed.
func NewEncryptor(key [KeySize]byte, nonce [NonceSize]byte, ad []byte, plaintext ByteProducer, plaintextLen int) *Encryptor {
	s := initState(key, nonce, ad)
	return &Encryptor{
		state:     *s,
		plaintext: plaintext,
		remaining: plaintextLen,
		phase:     phaseNeedBlock,
	}
}

// Next pulls and XORs as much plaintext as one duplex step needs and
// returns the next ciphertext or tag byte. ok is false with err == nil
// once the tag has been fully emitted; ok is false with err != nil if
// the underlying plaintext producer failed or ran dry early.
func (e *Encryptor) Next() (b byte, err error, ok bool) {
	if e.outPos < len(e.outBuf) {
		b = e.outBuf[e.outPos]
		e.outPos++
		return b, nil, true
	}

	switch e.phase {
	case phaseNeedBlock:
		n := e.remaining
		if n > RateBytes {
			n = RateBytes
		}
		block, err := pullExact(e.plaintext, n)
		if err != nil {
			return 0, err, false
		}
		e.outBuf = e.state.xorRatePrefix(block)
		e.outPos = 0
		e.remaining -= n

		if n == RateBytes {
			Permute(&e.state)
			if e.remaining == 0 {
				e.phase = phaseFinalize
			}
		} else {
			e.lastShort = n
			e.phase = phaseFinalize
		}

	case phaseFinalize:
		e.state.xorByteAt(e.lastShort, aeadDomainByte)
		e.state.xorByteAt(StateBytes-1, aeadDomainByte)
		Permute(&e.state)
		e.outBuf = e.state.Rate()
		e.outPos = 0
		e.phase = phaseDone

	case phaseDone:
		return 0, nil, false
	}

	if e.outPos >= len(e.outBuf) {
		// Zero-length block/tag edge case: recurse once to make
		// forward progress into the next phase instead of yielding
		// a bogus byte.
		return e.Next()
	}
	b = e.outBuf[e.outPos]
	e.outPos++
	return b, nil, true
}
