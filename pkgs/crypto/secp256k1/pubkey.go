package secp256k1

import (
	"errors"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// CompressedPubKeyLen is the length of a compressed public key.
	CompressedPubKeyLen = 33

	// UncompressedPubKeyLen is the length of an uncompressed public key.
	UncompressedPubKeyLen = 65

	// PrefixEven is the prefix for compressed public keys with even Y.
	PrefixEven byte = 0x02

	// PrefixOdd is the prefix for compressed public keys with odd Y.
	PrefixOdd byte = 0x03

	// PrefixUncompressed is the prefix for uncompressed public keys.
	PrefixUncompressed byte = 0x04
)

// ErrInvalidPublicKey is returned when public key bytes do not decode to a
// point on the curve.
var ErrInvalidPublicKey = errors.New("secp256k1: invalid public key")

func toFieldVal(x *big.Int) *secp256k1.FieldVal {
	var f secp256k1.FieldVal
	f.SetByteSlice(x.Bytes())
	return &f
}

// CompressPoint compresses an elliptic curve point to 33 bytes.
func CompressPoint(p *Point) []byte {
	pub := secp256k1.NewPublicKey(toFieldVal(p.X), toFieldVal(p.Y))
	return pub.SerializeCompressed()
}

// DecompressPoint decompresses a 33-byte compressed public key to a Point.
func DecompressPoint(compressed []byte) (*Point, error) {
	if len(compressed) != CompressedPubKeyLen {
		return nil, ErrInvalidPublicKey
	}
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return pointFromPubKey(pub), nil
}

// ParsePublicKey parses a public key from bytes, compressed or uncompressed.
func ParsePublicKey(data []byte) (*Point, error) {
	switch len(data) {
	case CompressedPubKeyLen, UncompressedPubKeyLen:
		pub, err := secp256k1.ParsePubKey(data)
		if err != nil {
			return nil, ErrInvalidPublicKey
		}
		return pointFromPubKey(pub), nil
	default:
		return nil, ErrInvalidPublicKey
	}
}

func pointFromPubKey(pub *secp256k1.PublicKey) *Point {
	xb := pub.X().Bytes()
	yb := pub.Y().Bytes()
	return &Point{X: new(big.Int).SetBytes(xb[:]), Y: new(big.Int).SetBytes(yb[:])}
}

// PrivateKeyToCompressedPublicKey derives the compressed public key from a
// private key.
func PrivateKeyToCompressedPublicKey(privateKey []byte) []byte {
	return CompressPoint(ScalarBaseMult(privateKey))
}
