// Package bip32 implements BIP-32 Hierarchical Deterministic Wallets over
// the Dogecoin chain parameter table: master key generation from a seed,
// hardened and non-hardened child derivation, neutering, and base58check
// serialization.
package bip32

import (
	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/hash"
	"github.com/study/crypto-accounts/pkgs/crypto/secp256k1"
)

// HardenedKeyStart is the index at which hardened child keys begin (2^31).
const HardenedKeyStart uint32 = 0x80000000

// maxDerivationRetries bounds the BIP-32 invalid-scalar retry policy
// (spec.md §4.10). An invalid I_L/k_child lands with probability roughly
// 2^-128, so this ceiling is never reached in practice.
const maxDerivationRetries = 1024

// ExtendedKey is a BIP-32 extended private or public key.
type ExtendedKey struct {
	key        []byte // 33 bytes: 0x00||privkey, or a compressed pubkey
	chainCode  []byte // 32 bytes
	depth      uint8
	parentFP   []byte // 4 bytes
	childIndex uint32
	chain      chainparams.Params
	isPrivate  bool
}

// NewMasterKey derives the master extended private key from a seed, per
// BIP-32: I = HMAC-SHA512("Bitcoin seed", seed); left 32 bytes are the
// master key, right 32 are the chain code.
func NewMasterKey(seed []byte, chain chainparams.Params) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}

	I := hash.HMACSHA512([]byte("Bitcoin seed"), seed)
	IL := I[:32]
	IR := I[32:]

	if !secp256k1.IsValidPrivateKey(IL) {
		return nil, ErrInvalidSeed
	}

	key := make([]byte, 33)
	copy(key[1:], IL)

	return &ExtendedKey{
		key:        key,
		chainCode:  IR,
		depth:      0,
		parentFP:   []byte{0x00, 0x00, 0x00, 0x00},
		childIndex: 0,
		chain:      chain,
		isPrivate:  true,
	}, nil
}

// IsPrivate reports whether this is a private extended key.
func (k *ExtendedKey) IsPrivate() bool {
	return k.isPrivate
}

// PublicKeyBytes returns the 33-byte compressed public key.
func (k *ExtendedKey) PublicKeyBytes() []byte {
	if !k.isPrivate {
		return k.key
	}
	return secp256k1.PrivateKeyToCompressedPublicKey(k.key[1:])
}

// PrivateKeyBytes returns the 32-byte private key, or nil for a public key.
func (k *ExtendedKey) PrivateKeyBytes() []byte {
	if !k.isPrivate {
		return nil
	}
	return k.key[1:]
}

// ChainCode returns the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte {
	return k.chainCode
}

// Depth returns the derivation depth (0 for master).
func (k *ExtendedKey) Depth() uint8 {
	return k.depth
}

// ParentFingerprint returns the 4-byte parent fingerprint.
func (k *ExtendedKey) ParentFingerprint() []byte {
	return k.parentFP
}

// ChildIndex returns the child index this key was derived at.
func (k *ExtendedKey) ChildIndex() uint32 {
	return k.childIndex
}

// ChainParams returns the network this key was derived for.
func (k *ExtendedKey) ChainParams() chainparams.Params {
	return k.chain
}

// Fingerprint returns the first 4 bytes of HASH160(compressed pubkey).
func (k *ExtendedKey) Fingerprint() []byte {
	return hash.Hash160(k.PublicKeyBytes())[:4]
}

// Wipe zeroes the private key payload in place.
func (k *ExtendedKey) Wipe() {
	if !k.isPrivate {
		return
	}
	for i := range k.key {
		k.key[i] = 0
	}
	for i := range k.chainCode {
		k.chainCode[i] = 0
	}
}

// Hardened returns the hardened form of index.
func Hardened(index uint32) uint32 {
	return index + HardenedKeyStart
}

// IsHardened reports whether index denotes hardened derivation.
func IsHardened(index uint32) bool {
	return index >= HardenedKeyStart
}

func copyBytes(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

func (k *ExtendedKey) clone() *ExtendedKey {
	return &ExtendedKey{
		key:        copyBytes(k.key),
		chainCode:  copyBytes(k.chainCode),
		depth:      k.depth,
		parentFP:   copyBytes(k.parentFP),
		childIndex: k.childIndex,
		chain:      k.chain,
		isPrivate:  k.isPrivate,
	}
}
