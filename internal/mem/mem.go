// Package mem provides byte-slice helpers shared by the sponge and the
// schemes.
package mem

import "crypto/subtle"

// XOR XORs a and b into dst. All three slices must have the same length;
// mismatched lengths are a programmer error.
func XOR(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("keccakite: XOR of unequal-length slices")
	}
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
	} else {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
	}
}

// Wipe zeroes b. Used to discard key material once it is no longer needed.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
