// Package testdata provides a deterministic random bit generator for tests,
// so that test data is stable across runs without checked-in fixtures.
package testdata

import (
	"github.com/tidelock/keccakite"
)

// DRBG is a deterministic byte stream seeded by a domain string. It
// implements io.Reader and never fails.
type DRBG struct {
	s *keccakite.Sponge
}

// New returns a DRBG seeded with the given domain string.
func New(domain string) *DRBG {
	s := keccakite.NewSponge(keccakite.KeccakF1600, keccakite.SuffixedPad(0x1F), 1600, 512)
	s.AbsorbAll([]byte(domain))
	return &DRBG{s: s}
}

// Data returns the next n bytes of the stream.
func (d *DRBG) Data(n int) []byte {
	out := make([]byte, 0, n+d.s.ByteRate())
	for len(out) < n {
		out = append(out, d.s.Squeeze()...)
	}
	return out[:n]
}

// Read fills p from the stream. It always succeeds.
func (d *DRBG) Read(p []byte) (int, error) {
	copy(p, d.Data(len(p)))
	return len(p), nil
}
