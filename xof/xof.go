// Package xof implements the FIPS 202 hash and extendable-output functions
// (SHA3-224/256/384/512, SHAKE128/256) and the NIST SP 800-185 derived
// functions cSHAKE128/256 and KMACXOF128/256, all over the Keccak-f[1600]
// sponge.
//
// Every function is pure and returns a byte string of exactly the requested
// length.
package xof

import (
	"github.com/tidelock/keccakite"
	"github.com/tidelock/keccakite/internal/nist"
)

// Domain separation suffixes from FIPS 202 and SP 800-185.
const (
	sha3Suffix   = 0x06
	shakeSuffix  = 0x1F
	cshakeSuffix = 0x04
)

const blockBits = 1600

// Sum224 returns the SHA3-224 digest of m.
func Sum224(m []byte) []byte { return sha3(m, 224) }

// Sum256 returns the SHA3-256 digest of m.
func Sum256(m []byte) []byte { return sha3(m, 256) }

// Sum384 returns the SHA3-384 digest of m.
func Sum384(m []byte) []byte { return sha3(m, 384) }

// Sum512 returns the SHA3-512 digest of m.
func Sum512(m []byte) []byte { return sha3(m, 512) }

// SHAKE128 returns n bytes of SHAKE128 output over m.
func SHAKE128(m []byte, n int) []byte {
	return shake(m, n, 256, shakeSuffix)
}

// SHAKE256 returns n bytes of SHAKE256 output over m.
func SHAKE256(m []byte, n int) []byte {
	return shake(m, n, 512, shakeSuffix)
}

// CSHAKE128 returns n bytes of cSHAKE128 output over m with function name fn
// and customization string s. With both fn and s empty it is SHAKE128.
func CSHAKE128(m []byte, n int, fn, s []byte) []byte {
	return cshake(m, n, fn, s, 256)
}

// CSHAKE256 returns n bytes of cSHAKE256 output over m with function name fn
// and customization string s. With both fn and s empty it is SHAKE256.
func CSHAKE256(m []byte, n int, fn, s []byte) []byte {
	return cshake(m, n, fn, s, 512)
}

// KMACXOF128 returns n bytes of KMACXOF128 output over m under key with
// customization string s.
func KMACXOF128(key, m []byte, n int, s []byte) []byte {
	return kmacxof(key, m, n, s, 256)
}

// KMACXOF256 returns n bytes of KMACXOF256 output over m under key with
// customization string s.
func KMACXOF256(key, m []byte, n int, s []byte) []byte {
	return kmacxof(key, m, n, s, 512)
}

func newSponge(suffix byte, capacity int) *keccakite.Sponge {
	return keccakite.NewSponge(keccakite.KeccakF1600, keccakite.SuffixedPad(suffix), blockBits, capacity)
}

func sha3(m []byte, d int) []byte {
	sp := newSponge(sha3Suffix, 2*d)
	sp.AbsorbAll(m)
	return sp.Squeeze()[:d/8]
}

func shake(m []byte, n, capacity int, suffix byte) []byte {
	sp := newSponge(suffix, capacity)
	sp.AbsorbAll(m)
	out := make([]byte, 0, n+sp.ByteRate())
	for len(out) < n {
		out = append(out, sp.Squeeze()...)
	}
	return out[:n]
}

func cshake(m []byte, n int, fn, s []byte, capacity int) []byte {
	if len(fn) == 0 && len(s) == 0 {
		return shake(m, n, capacity, shakeSuffix)
	}

	byteRate := (blockBits - capacity) / 8
	prefix := nist.AppendEncodeString(make([]byte, 0, len(fn)+len(s)+2*nist.MaxSize), fn)
	prefix = nist.AppendEncodeString(prefix, s)

	x := nist.Bytepad(prefix, byteRate)
	x = append(x, m...)
	return shake(x, n, capacity, cshakeSuffix)
}

func kmacxof(key, m []byte, n int, s []byte, capacity int) []byte {
	byteRate := (blockBits - capacity) / 8

	x := nist.Bytepad(nist.EncodeString(key), byteRate)
	x = append(x, m...)
	x = nist.AppendRightEncode(x, 0)
	return cshake(x, n, []byte("KMAC"), s, capacity)
}
