// Package keccak implements the Keccak-f[1600] permutation specified in
// FIPS 202.
//
// The 200-byte state is interpreted as a 5x5 grid of 64-bit lanes: octet i
// belongs to lane ((i/8) mod 5, (i/8)/5) at byte position i mod 8, with the
// lanes little-endian.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rc holds the constants XORed into lane (0,0) during the iota step of each
// round.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rho holds the lane rotation offsets, indexed [x][y], reduced mod 64.
var rho = [5][5]int{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(state *[200]byte) {
	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}
	permute(&a)
	for i := range a {
		binary.LittleEndian.PutUint64(state[i*8:], a[i])
	}
}

// permute runs the 24 rounds on the lane form of the state. Lane (x, y) is
// a[x+5y].
func permute(a *[25]uint64) {
	var b [25]uint64
	for round := range 24 {
		// Theta.
		var c, d [5]uint64
		for x := range 5 {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := range 5 {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[x+y] ^= d[x]
			}
		}

		// Rho and pi: A'[x][y] = rotl(A[(x+3y)%5][x], rho[(x+3y)%5][x]).
		for x := range 5 {
			for y := range 5 {
				src := (x + 3*y) % 5
				b[x+5*y] = bits.RotateLeft64(a[src+5*x], rho[src][x])
			}
		}

		// Chi, on a row snapshot so writes don't pollute reads.
		for y := 0; y < 25; y += 5 {
			for x := range 5 {
				a[x+y] = b[x+y] ^ (^b[(x+1)%5+y] & b[(x+2)%5+y])
			}
		}

		// Iota.
		a[0] ^= rc[round]
	}
}
