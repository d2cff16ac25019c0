// Package sig implements a Schnorr digital signature scheme over E-521 with
// KMACXOF256-derived nonces and challenges.
//
// Signing is deterministic: the nonce is derived from the private scalar and
// the message, eliminating nonce-reuse key recovery.
package sig

import (
	"crypto/subtle"
	"errors"
	"math/big"

	"github.com/tidelock/keccakite/e521"
	"github.com/tidelock/keccakite/internal/mem"
	"github.com/tidelock/keccakite/keys"
	"github.com/tidelock/keccakite/xof"
)

// SplitOffset is the byte offset separating h from z in a signature file.
const SplitOffset = 64

// ErrBadLength is returned when a signature encoding is too short to split.
var ErrBadLength = errors.New("sig: invalid signature length")

// A Signature is the (h, z) pair of a Schnorr signature: h the challenge,
// z the response mod r.
type Signature struct {
	H, Z *big.Int
}

// Sign signs m with the private scalar derived from pw.
func Sign(m, pw []byte) *Signature {
	s := keys.DeriveScalar(pw)
	sBytes := e521.SignedBytes(s)

	nb := xof.KMACXOF256(sBytes, m, 64, []byte("N"))
	k := new(big.Int).SetBytes(nb)
	k.Mul(k, big.NewInt(4))
	mem.Wipe(sBytes)
	mem.Wipe(nb)

	u := e521.Generator().ScalarMult(k)
	h := new(big.Int).SetBytes(xof.KMACXOF256(e521.SignedBytes(u.X()), m, 64, []byte("T")))

	z := new(big.Int).Mul(h, s)
	z.Sub(k, z)
	z.Mod(z, e521.R)

	s.SetInt64(0)
	k.SetInt64(0)

	return &Signature{H: h, Z: z}
}

// Verify reports whether sig is a valid signature of m under the public key
// pub. The recomputed challenge is compared in constant time.
func Verify(sig *Signature, m []byte, pub *e521.Point) bool {
	if sig.H.Sign() < 0 || sig.H.BitLen() > 512 {
		return false
	}
	if sig.Z.Sign() < 0 {
		return false
	}

	u := e521.Generator().ScalarMult(sig.Z).Add(pub.ScalarMult(sig.H))
	h := new(big.Int).SetBytes(xof.KMACXOF256(e521.SignedBytes(u.X()), m, 64, []byte("T")))

	var got, want [64]byte
	h.FillBytes(got[:])
	sig.H.FillBytes(want[:])
	return subtle.ConstantTimeCompare(got[:], want[:]) == 1
}

// Bytes encodes the signature as SignedBytes(h) || SignedBytes(z).
func (s *Signature) Bytes() []byte {
	return append(e521.SignedBytes(s.H), e521.SignedBytes(s.Z)...)
}

// ParseSignature decodes a signature by splitting b at SplitOffset: bytes
// [0, 64) are h, the remainder is z, both signed big-endian.
func ParseSignature(b []byte) (*Signature, error) {
	if len(b) <= SplitOffset {
		return nil, ErrBadLength
	}
	return &Signature{
		H: e521.ParseSigned(b[:SplitOffset]),
		Z: e521.ParseSigned(b[SplitOffset:]),
	}, nil
}
