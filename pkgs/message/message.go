// Package message implements Dogecoin's signed-message convention: a
// magic-prefixed double-SHA256 digest, a recoverable ECDSA signature
// packed into 65 bytes and base64-encoded, and verification by recovering
// the signer's public key and comparing its P2PKH address.
package message

import (
	"crypto/sha256"
	"encoding/base64"

	"github.com/study/crypto-accounts/pkgs/address"
	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/secp256k1"
)

// magic is the prefix Dogecoin (inherited from Bitcoin) mixes into every
// signed message digest, so a message signature can never be replayed as
// a transaction signature or vice versa.
const magic = "\x19Dogecoin Signed Message:\n"

// varint encodes n as a Bitcoin-style CompactSize integer.
func varint(n uint64) []byte {
	switch {
	case n < 0xfd:
		return []byte{byte(n)}
	case n <= 0xffff:
		return []byte{0xfd, byte(n), byte(n >> 8)}
	case n <= 0xffffffff:
		return []byte{0xfe, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}
	default:
		return []byte{0xff,
			byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24),
			byte(n >> 32), byte(n >> 40), byte(n >> 48), byte(n >> 56),
		}
	}
}

// Digest computes the double-SHA256 digest a message signature is made
// over: SHA256(SHA256(magic || varint(len(msg)) || msg)).
func Digest(msg string) [32]byte {
	data := append([]byte(magic), varint(uint64(len(msg)))...)
	data = append(data, msg...)
	first := sha256.Sum256(data)
	return sha256.Sum256(first[:])
}

// Sign produces a base64-encoded recoverable signature over msg.
func Sign(priv *secp256k1.PrivKey, msg string) (string, error) {
	digest := Digest(msg)
	sig, err := priv.SignHashRecoverable(digest[:])
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sig[:]), nil
}

// Verify reports whether sig is a valid signature of msg by the holder of
// addr's private key, on the given chain. It never distinguishes why
// verification failed (malformed base64, unrecoverable signature, or an
// address mismatch all return false).
func Verify(chain chainparams.Params, addr, sig, msg string) bool {
	raw, err := base64.StdEncoding.DecodeString(sig)
	if err != nil || len(raw) != 65 {
		return false
	}
	var packed [65]byte
	copy(packed[:], raw)

	digest := Digest(msg)
	pub, _, err := secp256k1.Recover(packed, digest[:])
	if err != nil {
		return false
	}

	recovered, err := address.P2PKH(chain, pub.Compressed())
	if err != nil {
		return false
	}
	return recovered == addr
}
