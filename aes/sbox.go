package aes

import (
	"math/bits"

	"github.com/cipherlab/aes128/gf256"
)

// This file generates the AES substitution and round constant tables.
//
// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// sbox FIPS-197 Figure 7. S-box substitution values generation
var sbox = func() (sbox [256]byte) {
	var p, q uint8 = 1, 1
	for {
		/* multiply p by 3 */
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		/* divide q by 3 (equals multiplication by 0xf6) */
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		/* compute the affine transformation */
		xformed := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	/* 0 is a special case since it has no inverse */
	sbox[0] = 0x63
	return sbox
}()

// invSbox FIPS-197 Figure 14. The S-box is a permutation, so inverting the
// forward table yields the full inverse table.
var invSbox = func() (inv [256]byte) {
	for i, v := range sbox {
		inv[v] = byte(i)
	}
	return inv
}()

// rcon FIPS-197 §5.2 round constants, rcon[i] = xⁱ⁻¹ in GF(2⁸). Index 0 is
// unused; the key schedule consumes indices 1..10.
var rcon = func() (rc [Rounds + 1]byte) {
	rc[1] = 0x01
	for i := 2; i < len(rc); i++ {
		rc[i] = gf256.Double(rc[i-1])
	}
	return rc
}()
