package bip32

import "errors"

var (
	// ErrInvalidSeed indicates a master key seed produced an invalid
	// scalar, or was outside the valid 16-64 byte range.
	ErrInvalidSeed = errors.New("bip32: invalid seed")

	// ErrHardenedFromPublic indicates an attempt to derive a hardened
	// child from a public-only key.
	ErrHardenedFromPublic = errors.New("bip32: cannot derive hardened child from public key")

	// ErrInvalidDerivation indicates the BIP-32 retry-on-invalid-scalar
	// policy exhausted its bounded number of attempts.
	ErrInvalidDerivation = errors.New("bip32: derivation retry exhausted")

	// ErrInvalidPath indicates a malformed derivation path string.
	ErrInvalidPath = errors.New("bip32: invalid derivation path")

	// ErrMalformedExtKey indicates a serialized extended key failed
	// structural validation (length, magic, or depth/fingerprint
	// consistency).
	ErrMalformedExtKey = errors.New("bip32: malformed extended key")
)
