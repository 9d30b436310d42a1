package bip39

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the size of the derived seed in bytes (512 bits).
	SeedSize = 64

	// PBKDF2Iterations is the iteration count BIP-39 mandates.
	PBKDF2Iterations = 2048

	// SaltPrefix prefixes the PBKDF2 salt, per BIP-39.
	SaltPrefix = "mnemonic"
)

// NewSeed derives a 512-bit seed from a mnemonic and optional passphrase.
// Both are NFKD-normalized before PBKDF2-HMAC-SHA512, per spec.md §4.7 and
// BIP-39 §"From mnemonic to seed".
func NewSeed(mnemonic, passphrase string) []byte {
	normMnemonic := norm.NFKD.String(mnemonic)
	normPassphrase := norm.NFKD.String(passphrase)
	salt := SaltPrefix + normPassphrase
	return pbkdf2.Key([]byte(normMnemonic), []byte(salt), PBKDF2Iterations, SeedSize, sha512.New)
}
