package bip32

import (
	"bytes"
	"encoding/binary"

	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/encoding"
)

// SerializedKeyLength is the length of a serialized extended key payload,
// excluding the base58check checksum (78 bytes total: 4-byte magic, which
// this package treats as the base58check prefix, plus a 74-byte body).
const SerializedKeyLength = 78

// Serialize returns the 78-byte extended key encoding: magic(4) ||
// depth(1) || parent_fp(4) || child_number(4) || chain_code(32) ||
// key_data(33).
func (k *ExtendedKey) Serialize() []byte {
	var buf bytes.Buffer

	magic := k.magic()
	buf.Write(magic[:])
	buf.WriteByte(k.depth)
	buf.Write(k.parentFP)

	indexBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(indexBytes, k.childIndex)
	buf.Write(indexBytes)

	buf.Write(k.chainCode)
	buf.Write(k.key)

	return buf.Bytes()
}

// String returns the base58check-encoded extended key.
func (k *ExtendedKey) String() string {
	magic := k.magic()
	body := k.Serialize()[4:]
	return encoding.Base58CheckEncode(magic[:], body)
}

func (k *ExtendedKey) magic() [4]byte {
	if k.isPrivate {
		return k.chain.HDPrivateKeyID
	}
	return k.chain.HDPublicKeyID
}

// ParseExtendedKey parses a base58check-encoded extended key, resolving its
// network and private/public-ness from the 4-byte magic.
func ParseExtendedKey(s string) (*ExtendedKey, error) {
	magicBytes, body, err := encoding.Base58CheckDecode(s, 4)
	if err != nil {
		return nil, err
	}

	var magic [4]byte
	copy(magic[:], magicBytes)

	chain, isPrivate, ok := chainparams.FromExtendedKeyMagic(magic)
	if !ok {
		return nil, ErrMalformedExtKey
	}

	return deserializeBody(body, chain, isPrivate)
}

// ParseExtendedKeyForChain parses a base58check-encoded extended key under
// an explicitly known chain, rather than inferring the chain from the
// 4-byte magic alone. Regtest and signet intentionally share testnet's
// extended-key magics (see chainparams), so magic-only resolution cannot
// tell them apart; a caller who already knows which chain it is working
// with should use this instead of ParseExtendedKey to avoid silently
// resolving a regtest/signet key to TestNetParams.
func ParseExtendedKeyForChain(s string, chain chainparams.Params) (*ExtendedKey, error) {
	magicBytes, body, err := encoding.Base58CheckDecode(s, 4)
	if err != nil {
		return nil, err
	}

	var magic [4]byte
	copy(magic[:], magicBytes)

	switch magic {
	case chain.HDPrivateKeyID:
		return deserializeBody(body, chain, true)
	case chain.HDPublicKeyID:
		return deserializeBody(body, chain, false)
	default:
		return nil, ErrMalformedExtKey
	}
}

func deserializeBody(body []byte, chain chainparams.Params, isPrivate bool) (*ExtendedKey, error) {
	if len(body) != SerializedKeyLength-4 {
		return nil, ErrMalformedExtKey
	}

	depth := body[0]
	parentFP := body[1:5]
	childIndex := binary.BigEndian.Uint32(body[5:9])
	chainCode := body[9:41]
	key := body[41:74]

	if depth == 0 {
		if !bytes.Equal(parentFP, []byte{0, 0, 0, 0}) || childIndex != 0 {
			return nil, ErrMalformedExtKey
		}
	}

	return &ExtendedKey{
		key:        copyBytes(key),
		chainCode:  copyBytes(chainCode),
		depth:      depth,
		parentFP:   copyBytes(parentFP),
		childIndex: childIndex,
		chain:      chain,
		isPrivate:  isPrivate,
	}, nil
}
