package kdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveDeterministic(t *testing.T) {
	secret := []byte("a shared secret")
	info := []byte("encryption-key")
	require.Equal(t, Derive(secret, info, 32), Derive(secret, info, 32))
}

func TestDeriveLength(t *testing.T) {
	out := Derive([]byte("s"), []byte("i"), 48)
	require.Len(t, out, 48)
}

func TestDeriveDomainSeparated(t *testing.T) {
	secret := []byte("a shared secret")
	a := Derive(secret, []byte("encryption-key"), 32)
	b := Derive(secret, []byte("mac-key"), 32)
	require.NotEqual(t, a, b)
}
