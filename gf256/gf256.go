// Package gf256 implements arithmetic over GF(2⁸) as used by AES.
//
// Elements are binary polynomials (polynomials over GF(2)) reduced modulo
// the irreducible polynomial x⁸ + x⁴ + x³ + x + 1. Addition of these
// polynomials corresponds to binary xor. Reducing mod Poly corresponds to
// binary xor with Poly every time a 0x100 bit appears.
package gf256

// Poly is the AES field polynomial x⁸ + x⁴ + x³ + x + 1.
const Poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// Double multiplies b by x in GF(2⁸) modulo the polynomial.
func Double(b byte) byte {
	// 0x1b is Poly truncated to the low 8 bits, applied when the shifted
	// bit crosses 0x100
	if b&0x80 != 0 {
		return (b << 1) ^ 0x1b
	}
	return b << 1
}

// Multiply multiplies a and b as GF(2) polynomials modulo Poly.
func Multiply(a, b byte) byte {
	var s byte
	for k := 0; k < 8 && b != 0; k++ {
		// Invariant: a == original a * xᵏ
		if b&1 != 0 {
			// s += a in GF(2); xor in binary
			s ^= a
		}

		a = Double(a)
		b >>= 1
	}
	return s
}
