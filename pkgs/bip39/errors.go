// Package bip39 implements BIP-39 mnemonic code for generating deterministic keys.
package bip39

import "errors"

var (
	// ErrInvalidEntropyLength is returned when entropy length is not valid.
	// Valid lengths are 128, 160, 192, 224, or 256 bits (16, 20, 24, 28, or 32 bytes).
	ErrInvalidEntropyLength = errors.New("invalid entropy length: must be 128, 160, 192, 224, or 256 bits")

	// ErrInvalidMnemonicLength describes a mnemonic whose word count is not
	// 12, 15, 18, 21, or 24. No function in this package returns it; a bad
	// word count surfaces as ErrInvalidMnemonic.
	ErrInvalidMnemonicLength = errors.New("invalid mnemonic length: must be 12, 15, 18, 21, or 24 words")

	// ErrInvalidMnemonic is returned for any mnemonic that fails decoding:
	// an unknown word, a bad word count, or a checksum mismatch.
	ErrInvalidMnemonic = errors.New("invalid mnemonic: unknown word, bad length, or checksum mismatch")

	// ErrInvalidChecksum describes a mnemonic whose checksum does not
	// verify. No function in this package returns it; a checksum failure
	// surfaces as ErrInvalidMnemonic.
	ErrInvalidChecksum = errors.New("invalid mnemonic: checksum mismatch")
)
