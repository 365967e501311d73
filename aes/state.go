package aes

import (
	fasthex "github.com/tmthrgd/go-hex"

	"github.com/cipherlab/aes128/types"
)

// BlockSize is the AES block size in bytes.
const BlockSize = types.BlockSize

// KeySize is the AES-128 key size in bytes.
const KeySize = types.BlockSize

// Rounds is the AES-128 round count.
const Rounds = 10

// State is the 4×4 working matrix of one block during a round.
//
// Blocks load column-major: byte i of a block occupies row i%4, column i/4.
//
//	[b0  b4  b8  b12]
//	[b1  b5  b9  b13]
//	[b2  b6  b10 b14]
//	[b3  b7  b11 b15]
type State [4][4]byte

// StateFromBlock loads a 16-byte block into a State. src must be exactly
// BlockSize bytes.
func StateFromBlock(src []byte) (s State) {
	_ = src[BlockSize-1]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			s[row][col] = src[row+4*col]
		}
	}
	return s
}

// PutBytes stores the State back into dst in column-major order. dst must be
// at least BlockSize bytes.
func (s *State) PutBytes(dst []byte) {
	_ = dst[BlockSize-1]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[row+4*col] = s[row][col]
		}
	}
}

// Block returns the State as a fixed 16-byte block.
func (s *State) Block() (b types.Block) {
	s.PutBytes(b[:])
	return b
}

// String renders the matrix as four hex rows, the way step-by-step AES
// walkthroughs print it.
func (s State) String() string {
	var buf [4*(4*3-1) + 3]byte
	n := 0
	for row := 0; row < 4; row++ {
		if row > 0 {
			buf[n] = '\n'
			n++
		}
		for col := 0; col < 4; col++ {
			if col > 0 {
				buf[n] = ' '
				n++
			}
			fasthex.Encode(buf[n:n+2], s[row][col:col+1])
			n += 2
		}
	}
	return string(buf[:n])
}
