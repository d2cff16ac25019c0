// Package keys derives E-521 key pairs from passphrases.
//
// The private scalar is s = 4 * KMACXOF256(pw, "", 512, "K") taken as an
// unsigned integer; the public key is s*G. Public keys marshal as the
// 132-byte point encoding and, for human consumption, as base58 text.
package keys

import (
	"fmt"
	"io"
	"math/big"

	"github.com/mr-tron/base58"

	"github.com/tidelock/keccakite/e521"
	"github.com/tidelock/keccakite/internal/mem"
	"github.com/tidelock/keccakite/xof"
)

// A KeyPair holds a private scalar and the matching public key.
type KeyPair struct {
	d   *big.Int
	pub *PublicKey
}

// Derive derives a key pair from a passphrase. An empty passphrase is
// replaced by 64 bytes from rand, matching the generated-key path; rand is
// otherwise unused.
func Derive(rand io.Reader, pw []byte) (*KeyPair, error) {
	if len(pw) == 0 {
		pw = make([]byte, 64)
		if _, err := io.ReadFull(rand, pw); err != nil {
			return nil, fmt.Errorf("keys: reading random passphrase: %w", err)
		}
		defer mem.Wipe(pw)
	}

	d := DeriveScalar(pw)
	return &KeyPair{d: d, pub: &PublicKey{p: e521.Generator().ScalarMult(d)}}, nil
}

// DeriveScalar returns the private scalar for a passphrase:
// 4 * KMACXOF256(pw, "", 512, "K") as an unsigned integer, unreduced.
func DeriveScalar(pw []byte) *big.Int {
	kb := xof.KMACXOF256(pw, nil, 64, []byte("K"))
	d := new(big.Int).SetBytes(kb)
	d.Mul(d, big.NewInt(4))
	mem.Wipe(kb)
	return d
}

// Scalar returns a copy of the private scalar.
func (kp *KeyPair) Scalar() *big.Int {
	return new(big.Int).Set(kp.d)
}

// PrivateBytes returns the signed big-endian form of the private scalar,
// the format private key files are written in.
func (kp *KeyPair) PrivateBytes() []byte {
	return e521.SignedBytes(kp.d)
}

// PublicKey returns the public key.
func (kp *KeyPair) PublicKey() *PublicKey {
	return kp.pub
}

// Wipe zeroes the private scalar. The key pair is unusable afterwards.
func (kp *KeyPair) Wipe() {
	kp.d.SetInt64(0)
}

// PublicKey is an E-521 point used to encrypt messages to, or verify
// signatures from, the holder of the private scalar.
type PublicKey struct {
	p *e521.Point
}

// NewPublicKey wraps a curve point as a public key.
func NewPublicKey(p *e521.Point) *PublicKey {
	return &PublicKey{p: p}
}

// Point returns the underlying curve point.
func (pk *PublicKey) Point() *e521.Point {
	return pk.p
}

// MarshalBinary encodes the public key into the 132-byte point form.
func (pk *PublicKey) MarshalBinary() (data []byte, err error) {
	return pk.p.Bytes(), nil
}

// UnmarshalBinary decodes a public key from the 132-byte point form.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	p, err := e521.PointFromBytes(data)
	if err != nil {
		return fmt.Errorf("keys: invalid public key: %w", err)
	}
	pk.p = p
	return nil
}

// MarshalText encodes the public key as base58 text.
func (pk *PublicKey) MarshalText() (text []byte, err error) {
	return []byte(base58.Encode(pk.p.Bytes())), nil
}

// UnmarshalText decodes a public key from base58 text.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	b, err := base58.Decode(string(text))
	if err != nil {
		return fmt.Errorf("keys: invalid public key text: %w", err)
	}
	return pk.UnmarshalBinary(b)
}

// String returns the public key as base58 text.
func (pk *PublicKey) String() string {
	text, err := pk.MarshalText()
	if err != nil {
		panic(err)
	}
	return string(text)
}
