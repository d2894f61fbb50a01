package gimli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPermutationDeterministic checks that the permutation is a pure
// function of its input state: the same starting state always produces
// the same output state.
func TestPermutationDeterministic(t *testing.T) {
	var s1, s2 State
	for i := range s1.w {
		x := uint32(i)
		s1.w[i] = x*x*x + 1
		s2.w[i] = s1.w[i]
	}

	Permute(&s1)
	Permute(&s2)

	require.Equal(t, s1.w, s2.w)
	require.NotEqual(t, [12]uint32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, s1.w)
}

func TestRotateLeftZeroIsIdentity(t *testing.T) {
	require.Equal(t, uint32(0x12345678), rotateLeft(0x12345678, 0))
}

func TestRotateLeftWraps(t *testing.T) {
	require.Equal(t, uint32(1), rotateLeft(1<<31, 1))
}

// TestAvalancheEffect is a non-normative health check, not a
// correctness requirement: flipping a single input bit should change
// roughly half the output bits.
func TestAvalancheEffect(t *testing.T) {
	var s1, s2 State
	s1.w[0] = 0xdeadbeef
	s2.w[0] = 0xdeadbeef ^ 1

	Permute(&s1)
	Permute(&s2)

	diffBits := 0
	for i := range s1.w {
		x := s1.w[i] ^ s2.w[i]
		for x != 0 {
			diffBits += int(x & 1)
			x >>= 1
		}
	}
	totalBits := StateWords * 32
	require.Greaterf(t, diffBits, totalBits/4,
		"single input bit flip only changed %d/%d output bits", diffBits, totalBits)
}
