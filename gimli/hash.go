package gimli

// Sum computes the Gimli sponge hash of input, producing an outLen-byte
// digest. It is the buffer-in, buffer-out convenience wrapper around
// Hash for callers that already hold the whole input in memory.
func Sum(input []byte, outLen int) []byte {
	digest, err := Hash(NewSliceProducer(input), len(input), outLen)
	if err != nil {
		// NewSliceProducer never runs dry before len(input) bytes and
		// never fails a read, so this is unreachable.
		panic(err)
	}
	return digest
}

// Hash computes the Gimli sponge hash of the first inputLen bytes
// pulled from input, producing an outLen-byte digest.
//
// Rate is 16 bytes; the state starts all-zero. Absorption XORs each
// block into the rate bytes, permuting after every *full* 16-byte
// block consumed. After the input is exhausted, the domain-separation
// bits (0x1f at the short-block boundary, 0x80 at byte 15) are applied
// and one more permutation runs before squeezing begins. Squeezing
// reads rate bytes out, permuting between blocks but never after the
// last one.
func Hash(input ByteProducer, inputLen int, outLen int) ([]byte, error) {
	var s State
	remaining := inputLen
	blockSize := 0

	for remaining > 0 {
		blockSize = remaining
		if blockSize > RateBytes {
			blockSize = RateBytes
		}
		block, err := pullExact(input, blockSize)
		if err != nil {
			return nil, err
		}
		s.xorRatePrefix(block)
		remaining -= blockSize

		if blockSize == RateBytes {
			Permute(&s)
			blockSize = 0
		}
	}

	s.xorByteAt(blockSize, hashDomainByte)
	s.xorByteAt(RateBytes-1, hashFinalByte)
	Permute(&s)

	output := make([]byte, 0, outLen)
	remainingOut := outLen
	for remainingOut > 0 {
		n := remainingOut
		if n > RateBytes {
			n = RateBytes
		}
		output = append(output, s.Rate()[:n]...)
		remainingOut -= n
		if remainingOut > 0 {
			Permute(&s)
		}
	}
	return output, nil
}
