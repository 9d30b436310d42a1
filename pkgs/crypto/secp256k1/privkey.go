package secp256k1

import (
	"crypto/rand"
	"runtime"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/encoding"
)

// maxGenerateAttempts bounds the CSPRNG retry loop in Generate. A 32-byte
// draw lands outside [1, n-1] with probability roughly 2^-128, so this
// ceiling is never reached by a sound RNG; it exists only to turn a broken
// RNG into an error instead of an infinite loop.
const maxGenerateAttempts = 1024

// PrivKey owns a 32-byte secp256k1 secret. It is wiped on Wipe and should be
// wiped by every caller once it is no longer needed.
type PrivKey struct {
	key [32]byte
}

// Generate draws a private key from a CSPRNG, rejecting draws outside
// [1, n-1] and retrying, per standard key-generation practice.
func Generate() (*PrivKey, error) {
	for i := 0; i < maxGenerateAttempts; i++ {
		var buf [32]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return nil, ErrRngFailure
		}
		if IsValidPrivateKey(buf[:]) {
			return &PrivKey{key: buf}, nil
		}
	}
	return nil, ErrRngFailure
}

// NewPrivKeyFromBytes wraps a 32-byte scalar as a PrivKey, validating that it
// lies in [1, n-1].
func NewPrivKeyFromBytes(b []byte) (*PrivKey, error) {
	if len(b) != 32 {
		return nil, ErrInvalidScalar
	}
	if !IsValidPrivateKey(b) {
		return nil, ErrInvalidScalar
	}
	var k PrivKey
	copy(k.key[:], b)
	return &k, nil
}

// Bytes returns a copy of the 32-byte secret.
func (k *PrivKey) Bytes() []byte {
	out := make([]byte, 32)
	copy(out, k.key[:])
	return out
}

// PubKey derives the compressed public key for this private key.
func (k *PrivKey) PubKey() *PubKey {
	return &PubKey{point: ScalarBaseMult(k.key[:])}
}

// Wipe zeroes the secret in place. runtime.KeepAlive defeats the compiler's
// dead-store elimination, which would otherwise drop the zeroing writes
// since the backing array is about to go out of scope.
func (k *PrivKey) Wipe() {
	for i := range k.key {
		k.key[i] = 0
	}
	runtime.KeepAlive(k)
}

func (k *PrivKey) btcec() *btcec.PrivateKey {
	return btcec.PrivKeyFromBytes(k.key[:])
}

// EncodeWIF encodes the key as Wallet Import Format for chain, always
// compressed (this engine only ever emits compressed-pubkey WIFs).
func (k *PrivKey) EncodeWIF(chain chainparams.Params) string {
	payload := make([]byte, 0, 33)
	payload = append(payload, k.key[:]...)
	payload = append(payload, 0x01)
	return encoding.Base58CheckEncode([]byte{chain.PrivateKeyID}, payload)
}

// DecodeWIF decodes a WIF string for chain. It accepts both compressed
// (34 bytes decoded including the version byte, trailing 0x01) and
// uncompressed (33 bytes decoded) forms, but this engine's own PrivKey is
// always treated as compressed downstream.
func DecodeWIF(chain chainparams.Params, s string) (*PrivKey, bool, error) {
	prefix, payload, err := encoding.Base58CheckDecode(s, 1)
	if err != nil {
		if err == encoding.ErrInvalidChecksum {
			return nil, false, ErrBadChecksum
		}
		return nil, false, err
	}
	if prefix[0] != chain.PrivateKeyID {
		return nil, false, ErrWrongNetwork
	}

	switch len(payload) {
	case 33:
		if payload[32] != 0x01 {
			return nil, false, ErrNotCompressed
		}
		k, err := NewPrivKeyFromBytes(payload[:32])
		if err != nil {
			return nil, false, err
		}
		return k, true, nil
	case 32:
		k, err := NewPrivKeyFromBytes(payload)
		if err != nil {
			return nil, false, err
		}
		return k, false, nil
	default:
		return nil, false, ErrBadLength
	}
}
