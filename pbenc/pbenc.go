// Package pbenc implements passphrase-based authenticated encryption.
//
// A random 64-byte salt z and the passphrase derive a masking key and an
// authentication key via KMACXOF256; the plaintext is XORed with a
// KMACXOF256 keystream and authenticated with a 64-byte tag.
package pbenc

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/tidelock/keccakite/internal/mem"
	"github.com/tidelock/keccakite/xof"
)

const (
	// SaltSize is the length, in bytes, of the random salt z.
	SaltSize = 64

	// TagSize is the length, in bytes, of the authentication tag.
	TagSize = 64

	keySize = 64
)

var (
	// ErrAuthentication is returned when a cryptogram's tag does not match
	// its contents. No plaintext is released.
	ErrAuthentication = errors.New("pbenc: authentication failed")

	// ErrBadLength is returned for wrong-length auxiliary data.
	ErrBadLength = errors.New("pbenc: invalid auxiliary data length")
)

// A Cryptogram is the (z, c, t) triple produced by Encrypt. The ciphertext
// has exactly the plaintext's length.
type Cryptogram struct {
	Salt       []byte
	Ciphertext []byte
	Tag        []byte
}

// Encrypt encrypts m under the passphrase pw with a salt drawn from rand,
// which must be cryptographically secure.
func Encrypt(rand io.Reader, m, pw []byte) (*Cryptogram, error) {
	z := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand, z); err != nil {
		return nil, fmt.Errorf("pbenc: reading salt: %w", err)
	}

	ke, ka := splitKeys(z, pw)
	defer mem.Wipe(ke)
	defer mem.Wipe(ka)

	c := make([]byte, len(m))
	mask := xof.KMACXOF256(ke, nil, len(m), []byte("SKE"))
	mem.XOR(c, m, mask)

	return &Cryptogram{
		Salt:       z,
		Ciphertext: c,
		Tag:        xof.KMACXOF256(ka, m, TagSize, []byte("SKA")),
	}, nil
}

// Decrypt recovers the plaintext of a cryptogram, or returns
// ErrAuthentication if the tag does not verify.
func Decrypt(cg *Cryptogram, pw []byte) ([]byte, error) {
	ke, ka := splitKeys(cg.Salt, pw)
	defer mem.Wipe(ke)
	defer mem.Wipe(ka)

	m := make([]byte, len(cg.Ciphertext))
	mask := xof.KMACXOF256(ke, nil, len(cg.Ciphertext), []byte("SKE"))
	mem.XOR(m, cg.Ciphertext, mask)

	tag := xof.KMACXOF256(ka, m, TagSize, []byte("SKA"))
	if subtle.ConstantTimeCompare(tag, cg.Tag) != 1 {
		return nil, ErrAuthentication
	}
	return m, nil
}

// Aux returns the auxiliary file form of the cryptogram: z || t.
func (cg *Cryptogram) Aux() []byte {
	return append(append(make([]byte, 0, SaltSize+TagSize), cg.Salt...), cg.Tag...)
}

// FromAux reassembles a cryptogram from its auxiliary data (z || t) and
// ciphertext.
func FromAux(aux, ciphertext []byte) (*Cryptogram, error) {
	if len(aux) != SaltSize+TagSize {
		return nil, ErrBadLength
	}
	return &Cryptogram{
		Salt:       aux[:SaltSize],
		Ciphertext: ciphertext,
		Tag:        aux[SaltSize:],
	}, nil
}

// splitKeys derives the masking and authentication keys from the salted
// passphrase: (ke || ka) = KMACXOF256(z || pw, "", 1024, "S").
func splitKeys(z, pw []byte) (ke, ka []byte) {
	salted := append(append(make([]byte, 0, len(z)+len(pw)), z...), pw...)
	defer mem.Wipe(salted)

	keka := xof.KMACXOF256(salted, nil, 2*keySize, []byte("S"))
	return keka[:keySize], keka[keySize:]
}
