package bip32

import (
	"encoding/binary"

	"github.com/study/crypto-accounts/pkgs/crypto/hash"
	"github.com/study/crypto-accounts/pkgs/crypto/secp256k1"
)

// Child derives a child extended key at index, honoring the BIP-32
// invalid-scalar retry policy (spec.md §4.10): if I_L >= n or the resulting
// child scalar is zero, derivation silently advances to the next index
// instead of producing or surfacing an invalid key. Exhausting the retry
// bound returns ErrInvalidDerivation.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	isHardened := IsHardened(index)
	if !k.isPrivate && isHardened {
		return nil, ErrHardenedFromPublic
	}

	for attempt := 0; attempt < maxDerivationRetries; attempt++ {
		tryIndex := index + uint32(attempt)

		data := buildChildData(k, tryIndex, isHardened)
		I := hash.HMACSHA512(k.chainCode, data)
		IL := I[:32]
		IR := I[32:]

		if !secp256k1.IsValidPrivateKey(IL) {
			continue
		}

		childKey, ok := deriveChildKey(k, IL)
		if !ok {
			continue
		}

		return &ExtendedKey{
			key:        childKey,
			chainCode:  IR,
			depth:      k.depth + 1,
			parentFP:   k.Fingerprint(),
			childIndex: tryIndex,
			chain:      k.chain,
			isPrivate:  k.isPrivate,
		}, nil
	}

	return nil, ErrInvalidDerivation
}

func buildChildData(k *ExtendedKey, index uint32, isHardened bool) []byte {
	data := make([]byte, 37)
	if isHardened {
		copy(data, k.key) // 0x00 || k_par
	} else {
		copy(data, k.PublicKeyBytes())
	}
	binary.BigEndian.PutUint32(data[33:], index)
	return data
}

func deriveChildKey(k *ExtendedKey, IL []byte) ([]byte, bool) {
	if k.isPrivate {
		return derivePrivateChildKey(k.key[1:], IL)
	}
	return derivePublicChildKey(k.key, IL)
}

// derivePrivateChildKey computes k_child = (I_L + k_par) mod n.
func derivePrivateChildKey(parentKey, IL []byte) ([]byte, bool) {
	childKeyBytes := secp256k1.AddPrivateKeys(parentKey, IL)
	if !secp256k1.IsValidPrivateKey(childKeyBytes) {
		return nil, false
	}

	result := make([]byte, 33)
	copy(result[1:], childKeyBytes)
	return result, true
}

// derivePublicChildKey computes K_child = point(I_L) + K_par.
func derivePublicChildKey(parentPubKey, IL []byte) ([]byte, bool) {
	parentPoint, err := secp256k1.DecompressPoint(parentPubKey)
	if err != nil {
		return nil, false
	}

	ilPoint := secp256k1.ScalarBaseMult(IL)
	childPoint := secp256k1.Add(ilPoint, parentPoint)
	if childPoint.IsInfinity() {
		return nil, false
	}

	return secp256k1.CompressPoint(childPoint), true
}

// Neuter returns the public-only extended key for a private extended key.
// Called on an already-public key, it returns a copy.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k.clone()
	}

	return &ExtendedKey{
		key:        k.PublicKeyBytes(),
		chainCode:  copyBytes(k.chainCode),
		depth:      k.depth,
		parentFP:   copyBytes(k.parentFP),
		childIndex: k.childIndex,
		chain:      k.chain,
		isPrivate:  false,
	}
}
