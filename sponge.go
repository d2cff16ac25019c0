// Package keccakite provides the Keccak-f[1600] duplex sponge underlying the
// SHA-3 derived functions in package xof and the schemes built on them.
//
// A Sponge is parameterized over a permutation and a padding rule as function
// values. Only Keccak-f[1600] with suffixed pad10*1 is used in this module,
// but the seam keeps alternate permutations testable.
package keccakite

import (
	"github.com/tidelock/keccakite/internal/keccak"
	"github.com/tidelock/keccakite/internal/mem"
)

// A Permutation scrambles a sponge state in place.
type Permutation func(state []byte)

// A PaddingRule extends a message to a positive multiple of the rate.
type PaddingRule func(m []byte, rateBits int) []byte

// KeccakF1600 is the 24-round Keccak-f[1600] permutation on a 200-byte state.
func KeccakF1600(state []byte) {
	if len(state) != 200 {
		panic("keccakite: Keccak-f[1600] state must be 200 bytes")
	}
	keccak.F1600((*[200]byte)(state))
}

// Sponge is a duplex sponge over an arbitrary permutation and padding rule.
// It is a single-owner value: concurrent mutation is not supported, and two
// squeezes from the same instance are not independent streams.
type Sponge struct {
	state    []byte
	byteRate int
	f        Permutation
	pad      PaddingRule
}

// NewSponge returns a sponge over the permutation f and padding rule pad with
// a zero-filled state of b bits, of which c are capacity. The rate b-c must
// be a positive multiple of 8 strictly less than b.
func NewSponge(f Permutation, pad PaddingRule, b, c int) *Sponge {
	r := b - c
	if b%8 != 0 || r <= 0 || r%8 != 0 || r >= b {
		panic("keccakite: invalid sponge geometry")
	}
	return &Sponge{
		state:    make([]byte, b/8),
		byteRate: r / 8,
		f:        f,
		pad:      pad,
	}
}

// ByteRate returns the sponge's rate in bytes.
func (s *Sponge) ByteRate() int {
	return s.byteRate
}

// Absorb XORs a raw, already-padded block into the front of the state and
// permutes. The block must not exceed the state length; blocks longer than
// the rate intrude on the capacity and are the caller's responsibility.
func (s *Sponge) Absorb(block []byte) {
	if len(block) > len(s.state) {
		panic("keccakite: absorbed block exceeds state length")
	}
	mem.XOR(s.state[:len(block)], s.state[:len(block)], block)
	s.f(s.state)
}

// AbsorbAll pads x with the sponge's padding rule and absorbs it one
// rate-sized block at a time.
func (s *Sponge) AbsorbAll(x []byte) {
	padded := s.pad(x, s.byteRate*8)
	for len(padded) > 0 {
		s.Absorb(padded[:s.byteRate])
		padded = padded[s.byteRate:]
	}
}

// Squeeze returns the first rate bytes of the state and permutes. Repeated
// calls extend the output stream.
func (s *Sponge) Squeeze() []byte {
	out := make([]byte, s.byteRate)
	copy(out, s.state)
	s.f(s.state)
	return out
}

// DuplexAbsorb combines absorption and squeezing for duplex use. A nil block
// behaves as Squeeze. A nonempty block whose length is a multiple of the rate
// is absorbed raw; any other block, the empty block included, is padded and
// absorbed. Returns the first rate bytes of the state after the permutation.
func (s *Sponge) DuplexAbsorb(block []byte) []byte {
	if block == nil {
		return s.Squeeze()
	}
	if len(block) != 0 && len(block)%s.byteRate == 0 {
		s.Absorb(block)
	} else {
		s.AbsorbAll(block)
	}
	out := make([]byte, s.byteRate)
	copy(out, s.state)
	return out
}

// Clear zeroes the sponge state.
func (s *Sponge) Clear() {
	mem.Wipe(s.state)
}
