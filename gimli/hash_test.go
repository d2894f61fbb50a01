package gimli

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHashKnownVectors checks the literal vectors in the shared
// hashSelfTestVectors table also exercised by SelfTest.
func TestHashKnownVectors(t *testing.T) {
	for _, v := range hashSelfTestVectors {
		want, err := hex.DecodeString(v.want)
		require.NoError(t, err)

		got := Sum([]byte(v.input), 32)
		require.Equalf(t, want, got, "hash(%q, 32)", v.input)
	}
}

func TestHashDeterministic(t *testing.T) {
	msg := []byte("determinism check")
	require.Equal(t, Sum(msg, 40), Sum(msg, 40))
}

func TestHashLengthMatchesRequest(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 65} {
		got := Sum([]byte("fixed input"), n)
		require.Lenf(t, got, n, "outLen=%d", n)
	}
}

func TestHashEmptyInputIsWellDefined(t *testing.T) {
	got := Sum(nil, 16)
	require.Len(t, got, 16)
}

// TestHashStreamingAgreesWithSliceProducer checks that driving Hash via
// an io.Reader-backed producer (byte-at-a-time) yields the same digest
// as the in-memory slice producer, for varied lengths.
func TestHashStreamingAgreesWithSliceProducer(t *testing.T) {
	lengths := []int{0, 1, 15, 16, 17, 31, 100}
	for _, n := range lengths {
		msg := make([]byte, n)
		for i := range msg {
			msg[i] = byte(i * 7)
		}

		want := Sum(msg, 32)

		got, err := Hash(NewReaderProducer(bytes.NewReader(msg)), len(msg), 32)
		require.NoError(t, err)
		require.Equalf(t, want, got, "len=%d", n)
	}
}
