package secp256k1

import "errors"

var (
	// ErrRngFailure is returned when the CSPRNG fails to produce a valid
	// scalar within a bounded number of draws.
	ErrRngFailure = errors.New("secp256k1: rng failure generating private key")

	// ErrInvalidScalar is returned when a 32-byte value is zero or >= n.
	ErrInvalidScalar = errors.New("secp256k1: scalar is zero or exceeds curve order")

	// ErrWrongNetwork is returned when a WIF's prefix byte does not match
	// the requested chain.
	ErrWrongNetwork = errors.New("secp256k1: wif prefix does not match chain")

	// ErrBadLength is returned when a decoded WIF, version byte included,
	// is neither 33 nor 34 bytes.
	ErrBadLength = errors.New("secp256k1: wif payload has invalid length")

	// ErrNotCompressed is returned when a 34-byte decoded WIF's trailing
	// byte is not the compression flag 0x01.
	ErrNotCompressed = errors.New("secp256k1: wif compression flag is not 0x01")

	// ErrBadChecksum is returned when a WIF's base58check checksum does
	// not verify.
	ErrBadChecksum = errors.New("secp256k1: wif checksum mismatch")

	// ErrBadSignature is returned when a signature fails to parse, verify,
	// or recover.
	ErrBadSignature = errors.New("secp256k1: bad signature")
)
