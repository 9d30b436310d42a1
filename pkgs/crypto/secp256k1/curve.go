// Package secp256k1 provides the elliptic curve and ECDSA primitives the
// rest of the engine treats as a trusted collaborator: point arithmetic for
// BIP-32 child-key derivation, key generation, WIF encoding, and recoverable
// signing. The curve math itself is never reimplemented here — it is
// delegated to the constant-time field and scalar types in
// github.com/decred/dcrd/dcrec/secp256k1/v4.
package secp256k1

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve parameters for secp256k1.
var (
	// N is the order of the curve (number of points on the curve).
	N, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

	// P is the prime field of the curve.
	P, _ = new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)

	// Gx is the x-coordinate of the generator point.
	Gx, _ = new(big.Int).SetString("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798", 16)

	// Gy is the y-coordinate of the generator point.
	Gy, _ = new(big.Int).SetString("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8", 16)
)

// Point represents a point on the secp256k1 elliptic curve in affine
// coordinates.
type Point struct {
	X, Y *big.Int
}

// Generator returns the generator point G of the secp256k1 curve.
func Generator() *Point {
	return &Point{X: new(big.Int).Set(Gx), Y: new(big.Int).Set(Gy)}
}

// Infinity returns the point at infinity (identity element).
func Infinity() *Point {
	return &Point{X: big.NewInt(0), Y: big.NewInt(0)}
}

// IsInfinity returns true if the point is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

// Clone returns a deep copy of the point.
func (p *Point) Clone() *Point {
	return &Point{X: new(big.Int).Set(p.X), Y: new(big.Int).Set(p.Y)}
}

// Equal returns true if two points are equal.
func (p *Point) Equal(other *Point) bool {
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// toJacobian converts an affine Point to the library's Jacobian
// representation. The point at infinity maps to the zero value, whose Z
// coordinate is zero.
func toJacobian(p *Point) secp256k1.JacobianPoint {
	var j secp256k1.JacobianPoint
	if p.IsInfinity() {
		return j
	}
	j.X.SetByteSlice(p.X.Bytes())
	j.Y.SetByteSlice(p.Y.Bytes())
	j.Z.SetInt(1)
	return j
}

// fromJacobian converts a Jacobian point back to affine coordinates.
func fromJacobian(j *secp256k1.JacobianPoint) *Point {
	if j.Z.IsZero() {
		return Infinity()
	}
	j.ToAffine()
	xb := j.X.Bytes()
	yb := j.Y.Bytes()
	return &Point{X: new(big.Int).SetBytes(xb[:]), Y: new(big.Int).SetBytes(yb[:])}
}

// Add performs point addition: P1 + P2.
func Add(p1, p2 *Point) *Point {
	j1 := toJacobian(p1)
	j2 := toJacobian(p2)
	var result secp256k1.JacobianPoint
	secp256k1.AddNonConst(&j1, &j2, &result)
	return fromJacobian(&result)
}

// Double performs point doubling: 2P.
func Double(p *Point) *Point {
	j := toJacobian(p)
	var result secp256k1.JacobianPoint
	secp256k1.DoubleNonConst(&j, &result)
	return fromJacobian(&result)
}

// ScalarBaseMult performs scalar multiplication with the generator: k * G.
func ScalarBaseMult(k []byte) *Point {
	var scalar secp256k1.ModNScalar
	scalar.SetByteSlice(k)
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&scalar, &result)
	return fromJacobian(&result)
}

// IsValidPrivateKey reports whether key, interpreted as a 32-byte big-endian
// integer, lies in [1, n-1].
func IsValidPrivateKey(key []byte) bool {
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(key)
	return !overflow && !scalar.IsZero()
}

// AddPrivateKeys adds two private keys modulo the curve order n, as BIP-32
// non-hardened derivation requires.
func AddPrivateKeys(k1, k2 []byte) []byte {
	var s1, s2 secp256k1.ModNScalar
	s1.SetByteSlice(k1)
	s2.SetByteSlice(k2)
	s1.Add(&s2)
	b := s1.Bytes()
	return b[:]
}
