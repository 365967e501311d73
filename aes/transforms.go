package aes

import "github.com/cipherlab/aes128/gf256"

// The four round transforms of FIPS-197 §5.1 and their inverses in §5.3.
// All take and return State values; nothing here touches shared data.

func subBytes(s State) State {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = sbox[s[row][col]]
		}
	}
	return s
}

func invSubBytes(s State) State {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] = invSbox[s[row][col]]
		}
	}
	return s
}

// shiftRows rotates row r left by r positions; row 0 is unchanged.
func shiftRows(s State) (out State) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][col] = s[row][(col+row)&3]
		}
	}
	return out
}

// invShiftRows rotates row r right by r positions.
func invShiftRows(s State) (out State) {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row][(col+row)&3] = s[row][col]
		}
	}
	return out
}

// mixColumns multiplies each column by the circulant matrix
// {02 03 01 01} over GF(2⁸).
func mixColumns(s State) (out State) {
	for col := 0; col < 4; col++ {
		s0, s1, s2, s3 := s[0][col], s[1][col], s[2][col], s[3][col]
		out[0][col] = gf256.Multiply(s0, 0x02) ^ gf256.Multiply(s1, 0x03) ^ s2 ^ s3
		out[1][col] = s0 ^ gf256.Multiply(s1, 0x02) ^ gf256.Multiply(s2, 0x03) ^ s3
		out[2][col] = s0 ^ s1 ^ gf256.Multiply(s2, 0x02) ^ gf256.Multiply(s3, 0x03)
		out[3][col] = gf256.Multiply(s0, 0x03) ^ s1 ^ s2 ^ gf256.Multiply(s3, 0x02)
	}
	return out
}

// invMixColumns multiplies each column by the inverse matrix {0e 0b 0d 09}.
func invMixColumns(s State) (out State) {
	for col := 0; col < 4; col++ {
		s0, s1, s2, s3 := s[0][col], s[1][col], s[2][col], s[3][col]
		out[0][col] = gf256.Multiply(s0, 0x0e) ^ gf256.Multiply(s1, 0x0b) ^ gf256.Multiply(s2, 0x0d) ^ gf256.Multiply(s3, 0x09)
		out[1][col] = gf256.Multiply(s0, 0x09) ^ gf256.Multiply(s1, 0x0e) ^ gf256.Multiply(s2, 0x0b) ^ gf256.Multiply(s3, 0x0d)
		out[2][col] = gf256.Multiply(s0, 0x0d) ^ gf256.Multiply(s1, 0x09) ^ gf256.Multiply(s2, 0x0e) ^ gf256.Multiply(s3, 0x0b)
		out[3][col] = gf256.Multiply(s0, 0x0b) ^ gf256.Multiply(s1, 0x0d) ^ gf256.Multiply(s2, 0x09) ^ gf256.Multiply(s3, 0x0e)
	}
	return out
}

// addRoundKey xors the round key into the state. Self-inverse, shared by
// both pipelines.
func addRoundKey(s State, rk *RoundKey) State {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s[row][col] ^= rk[row][col]
		}
	}
	return s
}
