// Package hpke implements ECDHIES-style public-key authenticated encryption
// over E-521.
//
// Encryption draws an ephemeral scalar k, computes the shared point
// W = k*pub and the public nonce point Z = k*G, and derives masking and
// authentication keys from W's x-coordinate via KMACXOF256. Decryption
// recomputes W from Z with the recipient's passphrase-derived scalar.
package hpke

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/tidelock/keccakite/e521"
	"github.com/tidelock/keccakite/internal/mem"
	"github.com/tidelock/keccakite/keys"
	"github.com/tidelock/keccakite/xof"
)

const (
	// TagSize is the length, in bytes, of the authentication tag.
	TagSize = 64

	keySize = 64
)

var (
	// ErrAuthentication is returned when a cryptogram's tag does not match
	// its contents. No plaintext is released.
	ErrAuthentication = errors.New("hpke: authentication failed")

	// ErrBadLength is returned for wrong-length auxiliary data.
	ErrBadLength = errors.New("hpke: invalid auxiliary data length")
)

// A Cryptogram is the (Z, c, t) triple produced by Encrypt.
type Cryptogram struct {
	Z          *e521.Point
	Ciphertext []byte
	Tag        []byte
}

// Encrypt encrypts m to the holder of the private scalar behind pub, with
// the ephemeral scalar drawn from rand, which must be cryptographically
// secure.
func Encrypt(rand io.Reader, m []byte, pub *e521.Point) (*Cryptogram, error) {
	rb := make([]byte, 64)
	if _, err := io.ReadFull(rand, rb); err != nil {
		return nil, fmt.Errorf("hpke: reading ephemeral scalar: %w", err)
	}

	k := new(big.Int).SetBytes(rb)
	k.Mul(k, big.NewInt(4))
	k.Mod(k, e521.P)
	mem.Wipe(rb)

	w := pub.ScalarMult(k)
	z := e521.Generator().ScalarMult(k)
	k.SetInt64(0)

	ke, ka := splitKeys(w)
	defer mem.Wipe(ke)
	defer mem.Wipe(ka)

	c := make([]byte, len(m))
	mask := xof.KMACXOF256(ke, nil, len(m), []byte("PKE"))
	mem.XOR(c, m, mask)

	return &Cryptogram{
		Z:          z,
		Ciphertext: c,
		Tag:        xof.KMACXOF256(ka, m, TagSize, []byte("PKA")),
	}, nil
}

// Decrypt recovers the plaintext of a cryptogram using the recipient's
// passphrase, or returns ErrAuthentication if the tag does not verify.
func Decrypt(cg *Cryptogram, pw []byte) ([]byte, error) {
	s := keys.DeriveScalar(pw)
	w := cg.Z.ScalarMult(s)
	s.SetInt64(0)

	ke, ka := splitKeys(w)
	defer mem.Wipe(ke)
	defer mem.Wipe(ka)

	m := make([]byte, len(cg.Ciphertext))
	mask := xof.KMACXOF256(ke, nil, len(cg.Ciphertext), []byte("PKE"))
	mem.XOR(m, cg.Ciphertext, mask)

	tag := xof.KMACXOF256(ka, m, TagSize, []byte("PKA"))
	if subtle.ConstantTimeCompare(tag, cg.Tag) != 1 {
		return nil, ErrAuthentication
	}
	return m, nil
}

// Aux returns the auxiliary file form of the cryptogram: Z || t.
func (cg *Cryptogram) Aux() []byte {
	return append(cg.Z.Bytes(), cg.Tag...)
}

// FromAux reassembles a cryptogram from its auxiliary data (Z || t) and
// ciphertext. The tag is everything after the encoded point and must be at
// least TagSize bytes.
func FromAux(aux, ciphertext []byte) (*Cryptogram, error) {
	if len(aux) < e521.PointSize+TagSize {
		return nil, ErrBadLength
	}

	z, err := e521.PointFromBytes(aux[:e521.PointSize])
	if err != nil {
		return nil, fmt.Errorf("hpke: invalid nonce point: %w", err)
	}
	return &Cryptogram{
		Z:          z,
		Ciphertext: ciphertext,
		Tag:        aux[e521.PointSize:],
	}, nil
}

// splitKeys derives the masking and authentication keys from the shared
// point: (ke || ka) = KMACXOF256(Wx, "", 1024, "P"), with Wx the signed
// big-endian bytes of W's x-coordinate, unpadded.
func splitKeys(w *e521.Point) (ke, ka []byte) {
	wx := e521.SignedBytes(w.X())
	defer mem.Wipe(wx)

	keka := xof.KMACXOF256(wx, nil, 2*keySize, []byte("P"))
	return keka[:keySize], keka[keySize:]
}
