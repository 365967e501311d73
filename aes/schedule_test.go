package aes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cipherlab/aes128/types"
)

func TestExpandKeyFIPSAppendixA(t *testing.T) {
	key := types.MustKeyFromString("2b7e151628aed2a6abf7158809cf4f3c")

	ks, err := ExpandKey(key[:])
	require.NoError(t, err)
	require.Len(t, ks[:], Rounds+1)

	// Round key 0 is the key itself.
	require.Equal(t, types.Block(key), ks[0].Block())

	// FIPS-197 Appendix A.1, words w4..w7 and w40..w43.
	require.Equal(t, "a0fafe1788542cb123a339392a6c7605", ks[1].Block().String())
	require.Equal(t, "d014f9a8c9ee2589e13f0cc8b6630ca6", ks[Rounds].Block().String())
}

func TestExpandKeyLength(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 24, 32} {
		_, err := ExpandKey(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidKeyLength, "key length %d", n)
	}
}

func TestExpandKeyAlwaysElevenRoundKeys(t *testing.T) {
	for i := 0; i < 32; i++ {
		key := make([]byte, KeySize)
		for j := range key {
			key[j] = byte(i*KeySize + j)
		}
		ks, err := ExpandKey(key)
		require.NoError(t, err)
		require.Len(t, ks[:], Rounds+1)
	}
}

func TestRotWordSubWord(t *testing.T) {
	// Worked step for w4 of the FIPS key: RotWord then SubWord of w3.
	w := Word{0x09, 0xcf, 0x4f, 0x3c}
	rotated := rotWord(w)
	require.Equal(t, Word{0xcf, 0x4f, 0x3c, 0x09}, rotated)
	require.Equal(t, Word{0x8a, 0x84, 0xeb, 0x01}, subWord(rotated))
}
