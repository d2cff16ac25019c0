// Package e521 implements arithmetic on E-521, the Edwards curve
// x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^521 - 1) with d = -376014.
//
// The curve has 4r points for a prime r; the generator G spans the
// prime-order subgroup. Points are immutable values and every Point is on
// the curve.
//
// The package also carries the signed big-endian integer codec used by the
// point, key, and signature file formats: the minimal two's-complement
// big-endian encoding, matching java.math.BigInteger#toByteArray, which
// existing key and signature files were written with.
package e521

import (
	"errors"
	"math/big"
	"sync"
)

var (
	// ErrNotOnCurve is returned when coordinates fail the curve equation.
	ErrNotOnCurve = errors.New("e521: coordinates not on curve")

	// ErrNoSuchPoint is returned when an x-coordinate has no matching y.
	ErrNoSuchPoint = errors.New("e521: no curve point with that x-coordinate")

	// ErrBadLength is returned for wrong-length point encodings.
	ErrBadLength = errors.New("e521: invalid encoding length")
)

var (
	one = big.NewInt(1)

	// P is the field prime, the Mersenne prime 2^521 - 1.
	P = new(big.Int).Sub(new(big.Int).Lsh(one, 521), one)

	// D is the curve coefficient.
	D = big.NewInt(-376014)

	// R is the order of the prime-order subgroup: 2^519 - rc. The curve
	// carries 4R points in total.
	R = new(big.Int).Sub(new(big.Int).Lsh(one, 519), rc)

	rc, _ = new(big.Int).SetString("337554763258501705789107630418782636071904961214051226618635150085779108655765", 10)
)

const (
	// coordSize is the length of one signed big-endian coordinate, the
	// encoded length of P itself.
	coordSize = 66

	// PointSize is the length of an encoded point.
	PointSize = 2 * coordSize
)

// Point is an immutable point on E-521. The zero value is not valid; use
// Identity, Generator, NewPoint, or FromX.
type Point struct {
	x, y *big.Int
}

// Identity returns the group identity O = (0, 1).
func Identity() *Point {
	return &Point{x: big.NewInt(0), y: big.NewInt(1)}
}

var (
	genOnce sync.Once
	gen     *Point
)

// Generator returns the base point G, whose x-coordinate is 4 and whose
// y-coordinate is the even root of the curve equation.
func Generator() *Point {
	genOnce.Do(func() {
		g, err := FromX(big.NewInt(4), false)
		if err != nil {
			panic("e521: generator unconstructible: " + err.Error())
		}
		gen = g
	})
	return gen
}

// NewPoint returns the point (x, y), or ErrNotOnCurve if the coordinates do
// not satisfy the curve equation.
func NewPoint(x, y *big.Int) (*Point, error) {
	if !onCurve(x, y) {
		return nil, ErrNotOnCurve
	}
	return &Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}, nil
}

// FromX decompresses the point with the given x-coordinate and the
// y-coordinate whose least significant bit matches lsb. Returns
// ErrNoSuchPoint if the curve equation has no root for that x.
func FromX(x *big.Int, lsb bool) (*Point, error) {
	xx := new(big.Int).Mod(x, P)
	x2 := new(big.Int).Mul(xx, xx)
	x2.Mod(x2, P)

	// y^2 = (1 - x^2) / (1 - d*x^2)
	num := new(big.Int).Sub(one, x2)
	num.Mod(num, P)
	den := new(big.Int).Mul(D, x2)
	den.Sub(one, den)
	den.Mod(den, P)

	rad := den.ModInverse(den, P)
	rad.Mul(rad, num)
	rad.Mod(rad, P)

	y := sqrt(rad, P, lsb)
	if y == nil {
		return nil, ErrNoSuchPoint
	}
	return &Point{x: xx, y: y}, nil
}

// X returns a copy of the point's x-coordinate.
func (p *Point) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the point's y-coordinate.
func (p *Point) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same point.
func (p *Point) Equal(q *Point) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// IsIdentity reports whether p is the group identity (0, 1).
func (p *Point) IsIdentity() bool {
	return p.x.Sign() == 0 && p.y.Cmp(one) == 0
}

// Add returns p + q under the complete Edwards addition law:
//
//	x3 = (x1*y2 + y1*x2) / (1 + d*x1*x2*y1*y2)
//	y3 = (y1*y2 - x1*x2) / (1 - d*x1*x2*y1*y2)
func (p *Point) Add(q *Point) *Point {
	xx := new(big.Int).Mul(p.x, q.x)
	xx.Mod(xx, P)
	yy := new(big.Int).Mul(p.y, q.y)
	yy.Mod(yy, P)

	base := new(big.Int).Mul(xx, yy)
	base.Mod(base, P)
	base.Mul(base, D)
	base.Mod(base, P)

	x3 := new(big.Int).Mul(p.x, q.y)
	x3.Add(x3, new(big.Int).Mul(p.y, q.x))
	x3.Mod(x3, P)
	xDen := new(big.Int).Add(one, base)
	xDen.Mod(xDen, P)
	xDen.ModInverse(xDen, P)
	x3.Mul(x3, xDen)
	x3.Mod(x3, P)

	y3 := new(big.Int).Sub(yy, xx)
	y3.Mod(y3, P)
	yDen := new(big.Int).Sub(one, base)
	yDen.Mod(yDen, P)
	yDen.ModInverse(yDen, P)
	y3.Mul(y3, yDen)
	y3.Mod(y3, P)

	return &Point{x: x3, y: y3}
}

// Double returns 2p.
func (p *Point) Double() *Point {
	return p.Add(p)
}

// Negate returns (-x mod p, y).
func (p *Point) Negate() *Point {
	return &Point{x: new(big.Int).Mod(new(big.Int).Neg(p.x), P), y: new(big.Int).Set(p.y)}
}

// ScalarMult returns k*p by most-significant-bit-first double-and-add. k
// must be nonnegative; k = 0 yields the identity.
func (p *Point) ScalarMult(k *big.Int) *Point {
	result := Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		result = result.Double()
		if k.Bit(i) == 1 {
			result = result.Add(p)
		}
	}
	return result
}

// Bytes encodes the point as SignedBytes(x) || SignedBytes(y) with each
// coordinate sign-extended to 66 bytes.
func (p *Point) Bytes() []byte {
	out := make([]byte, PointSize)
	encodeCoord(out[:coordSize], p.x)
	encodeCoord(out[coordSize:], p.y)
	return out
}

// PointFromBytes decodes a point encoded by Bytes. Returns ErrBadLength for
// inputs of any other length and ErrNotOnCurve for coordinates off the
// curve.
func PointFromBytes(b []byte) (*Point, error) {
	if len(b) != PointSize {
		return nil, ErrBadLength
	}
	return NewPoint(ParseSigned(b[:coordSize]), ParseSigned(b[coordSize:]))
}

func encodeCoord(dst []byte, v *big.Int) {
	b := SignedBytes(v)
	if v.Sign() < 0 {
		for i := range len(dst) - len(b) {
			dst[i] = 0xFF
		}
	}
	copy(dst[len(dst)-len(b):], b)
}

// onCurve reports whether (x, y) satisfies x^2 + y^2 = 1 + d*x^2*y^2 mod p.
// The identity (0, 1) is accepted by short-circuit.
func onCurve(x, y *big.Int) bool {
	if x.Sign() == 0 && y.Cmp(one) == 0 {
		return true
	}

	x2 := new(big.Int).Mul(x, x)
	y2 := new(big.Int).Mul(y, y)

	left := new(big.Int).Add(x2, y2)
	left.Mod(left, P)

	right := new(big.Int).Mul(x2, y2)
	right.Mul(right, D)
	right.Add(right, one)
	right.Mod(right, P)

	return left.Cmp(right) == 0
}

// sqrt computes a square root of v mod p with the given least significant
// bit, for p = 3 (mod 4). Returns nil if v has no root.
func sqrt(v, p *big.Int, lsb bool) *big.Int {
	if v.Sign() == 0 {
		return big.NewInt(0)
	}

	e := new(big.Int).Rsh(p, 2)
	e.Add(e, one)
	r := new(big.Int).Exp(v, e, p)
	if r.Bit(0) != bit(lsb) {
		r.Sub(p, r)
	}

	check := new(big.Int).Mul(r, r)
	check.Sub(check, v)
	check.Mod(check, p)
	if check.Sign() != 0 {
		return nil
	}
	return r
}

func bit(b bool) uint {
	if b {
		return 1
	}
	return 0
}

// SignedBytes returns the minimal two's-complement big-endian encoding of v.
func SignedBytes(v *big.Int) []byte {
	if v.Sign() >= 0 {
		b := v.Bytes()
		if len(b) == 0 || b[0]&0x80 != 0 {
			return append([]byte{0x00}, b...)
		}
		return b
	}

	a := new(big.Int).Neg(v)
	bl := a.BitLen()
	if new(big.Int).And(a, new(big.Int).Sub(a, one)).Sign() == 0 {
		// Exact powers of two fit one bit tighter.
		bl--
	}
	n := uint(bl/8 + 1)
	m := new(big.Int).Add(new(big.Int).Lsh(one, 8*n), v)
	return m.FillBytes(make([]byte, n))
}

// ParseSigned decodes a two's-complement big-endian integer.
func ParseSigned(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(one, uint(8*len(b))))
	}
	return v
}
