package aes

import "errors"

var ErrInvalidKeyLength = errors.New("invalid key length")

// Word is a 4-byte column, the unit of key expansion.
type Word [4]byte

// RoundKey is a State derived from four consecutive schedule words.
type RoundKey = State

// KeySchedule holds the 11 round keys expanded from one 16-byte key.
// It is immutable once built and safe to share across blocks and
// goroutines.
type KeySchedule [Rounds + 1]RoundKey

// rotWord cyclically rotates the word left by one byte.
func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

// subWord substitutes each byte through the forward S-box.
func subWord(w Word) Word {
	return Word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// ExpandKey expands a 16-byte key into the full AES-128 key schedule
// per FIPS-197 §5.2.
func ExpandKey(key []byte) (*KeySchedule, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeyLength
	}

	var words [4 * (Rounds + 1)]Word
	for i := 0; i < 4; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := 4; i < len(words); i++ {
		temp := words[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/4]
		}
		prev := words[i-4]
		for j := 0; j < 4; j++ {
			words[i][j] = prev[j] ^ temp[j]
		}
	}

	// Round key r packs words 4r..4r+3 as the columns of a State.
	var ks KeySchedule
	for r := 0; r <= Rounds; r++ {
		for col := 0; col < 4; col++ {
			w := words[4*r+col]
			for row := 0; row < 4; row++ {
				ks[r][row][col] = w[row]
			}
		}
	}
	return &ks, nil
}
