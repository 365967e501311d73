package aes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomState(r *rand.Rand) (s State) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = byte(r.Intn(256))
		}
	}
	return s
}

func TestShiftRowsKnown(t *testing.T) {
	var s State
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = byte(4*row + col)
		}
	}
	out := shiftRows(s)
	require.Equal(t, [4]byte{0, 1, 2, 3}, out[0])
	require.Equal(t, [4]byte{5, 6, 7, 4}, out[1])
	require.Equal(t, [4]byte{10, 11, 8, 9}, out[2])
	require.Equal(t, [4]byte{15, 12, 13, 14}, out[3])
}

func TestShiftRowsInverse(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		s := randomState(r)
		require.Equal(t, s, invShiftRows(shiftRows(s)))
		require.Equal(t, s, shiftRows(invShiftRows(s)))
	}
}

func TestMixColumnsKnown(t *testing.T) {
	// FIPS-197 §5.1.3 example column {d4 bf 5d 30} -> {04 66 81 e5}.
	var s State
	s[0][0], s[1][0], s[2][0], s[3][0] = 0xd4, 0xbf, 0x5d, 0x30
	out := mixColumns(s)
	require.Equal(t, byte(0x04), out[0][0])
	require.Equal(t, byte(0x66), out[1][0])
	require.Equal(t, byte(0x81), out[2][0])
	require.Equal(t, byte(0xe5), out[3][0])
}

func TestMixColumnsInverse(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		s := randomState(r)
		require.Equal(t, s, invMixColumns(mixColumns(s)))
		require.Equal(t, s, mixColumns(invMixColumns(s)))
	}
}

func TestSubBytesInverse(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		s := randomState(r)
		require.Equal(t, s, invSubBytes(subBytes(s)))
	}
}

func TestAddRoundKeySelfInverse(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		s := randomState(r)
		rk := RoundKey(randomState(r))
		require.Equal(t, s, addRoundKey(addRoundKey(s, &rk), &rk))
	}
}

func TestStateRoundTrip(t *testing.T) {
	var block [BlockSize]byte
	for i := range block {
		block[i] = byte(i)
	}
	s := StateFromBlock(block[:])

	// Column-major: byte i sits at row i%4, column i/4.
	require.Equal(t, byte(0x05), s[1][1])
	require.Equal(t, byte(0x0e), s[2][3])

	var out [BlockSize]byte
	s.PutBytes(out[:])
	require.Equal(t, block, out)
}
