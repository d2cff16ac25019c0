// Package digest provides the KMACXOF256-based plain hash and passphrase
// authentication tag services.
package digest

import (
	"hash"

	"github.com/tidelock/keccakite/xof"
)

// Size is the length, in bytes, of digests and tags.
const Size = 64

// Sum returns the cryptographic hash of m: KMACXOF256("", m, 512, "D").
func Sum(m []byte) []byte {
	return xof.KMACXOF256(nil, m, Size, []byte("D"))
}

// Tag returns an authentication tag for m under the passphrase pw:
// KMACXOF256(pw, m, 512, "T").
func Tag(pw, m []byte) []byte {
	return xof.KMACXOF256(pw, m, Size, []byte("T"))
}

// New returns a hash.Hash instance computing Sum. The message is buffered
// until Sum is called.
func New() hash.Hash {
	return &digest{}
}

type digest struct {
	buf []byte
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	return append(b, Sum(d.buf)...)
}

func (d *digest) Reset() {
	d.buf = nil
}

func (d *digest) Size() int {
	return Size
}

func (d *digest) BlockSize() int {
	return 136 // cSHAKE256 rate
}

var _ hash.Hash = (*digest)(nil)
