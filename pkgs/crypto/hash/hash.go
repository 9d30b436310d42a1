// Package hash provides the hash primitives the engine's key derivation
// relies on: BIP-32's HMAC-SHA512 and the RIPEMD160(SHA256(.)) digest used
// for both fingerprints and P2PKH payloads.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/ripemd160"
)

// Hash160 computes RIPEMD160(SHA256(data)), commonly used for Bitcoin addresses.
func Hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}

// HMACSHA512 computes HMAC-SHA512 with the given key and data.
func HMACSHA512(key, data []byte) []byte {
	h := hmac.New(sha512.New, key)
	h.Write(data)
	return h.Sum(nil)
}
