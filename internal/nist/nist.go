// Package nist implements the string-encoding routines from [NIST SP 800-185]
// section 2.3 used to compose cSHAKE and KMAC inputs.
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
package nist

import (
	"math/bits"
)

// MaxSize is the length, in bytes, of the largest encoded integer.
const MaxSize = 9

// AppendLeftEncode encodes an integer value using left_encode and appends it
// to b.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	b = append(b, byte(n))
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	return b
}

// AppendRightEncode encodes an integer value using right_encode and appends
// it to b.
func AppendRightEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	b = append(b, byte(n))
	return b
}

// LeftEncode returns left_encode(value).
func LeftEncode(value uint64) []byte {
	return AppendLeftEncode(make([]byte, 0, MaxSize), value)
}

// RightEncode returns right_encode(value).
func RightEncode(value uint64) []byte {
	return AppendRightEncode(make([]byte, 0, MaxSize), value)
}

// AppendEncodeString encodes s using encode_string and appends it to b. The
// length prefix is the bit length of s.
func AppendEncodeString(b, s []byte) []byte {
	b = AppendLeftEncode(b, uint64(len(s))*8)
	return append(b, s...)
}

// EncodeString returns encode_string(s).
func EncodeString(s []byte) []byte {
	return AppendEncodeString(make([]byte, 0, MaxSize+len(s)), s)
}

// Bytepad prepends left_encode(w) to x and appends zeros until the result's
// length is a multiple of w. The rate w must be positive.
func Bytepad(x []byte, w int) []byte {
	if w <= 0 {
		panic("keccakite: bytepad rate must be positive")
	}
	z := AppendLeftEncode(make([]byte, 0, MaxSize+len(x)+w), uint64(w))
	z = append(z, x...)
	if rem := len(z) % w; rem != 0 {
		z = append(z, make([]byte, w-rem)...)
	}
	return z
}
