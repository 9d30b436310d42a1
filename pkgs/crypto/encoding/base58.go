// Package encoding provides the Base58Check and Bech32 codecs the rest of
// the engine uses to turn key material into wire-visible address and
// extended-key strings.
package encoding

import (
	"bytes"
	"crypto/sha256"
	"errors"

	"github.com/btcsuite/btcd/btcutil/base58"
)

var (
	ErrInvalidBase58     = errors.New("encoding: invalid base58 string")
	ErrInvalidChecksum   = errors.New("encoding: invalid base58check checksum")
	ErrInvalidDataLength = errors.New("encoding: base58check payload too short")
	ErrPayloadTooLarge   = errors.New("encoding: base58check payload exceeds maximum length")
)

// maxDecodedLen bounds base58check-decoded input: the largest legitimate
// payload this engine ever decodes is a 78-byte extended key, well under
// this ceiling, so anything beyond it is rejected outright.
const maxDecodedLen = 128

// checksum returns the first 4 bytes of SHA256(SHA256(data)).
func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// Base58Encode encodes data using the Bitcoin/Dogecoin base58 alphabet.
func Base58Encode(data []byte) string {
	return base58.Encode(data)
}

// Base58Decode decodes a base58 string. It rejects characters outside the
// alphabet and results longer than the engine ever legitimately produces.
func Base58Decode(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) == 0 && s != "" {
		return nil, ErrInvalidBase58
	}
	if len(decoded) > maxDecodedLen {
		return nil, ErrPayloadTooLarge
	}
	return decoded, nil
}

// Base58CheckEncode encodes prefix||payload with a trailing 4-byte
// double-SHA256 checksum, base58-encoded. prefix may be one byte (address
// and WIF encodings) or several (BIP-32 extended key magics).
func Base58CheckEncode(prefix, payload []byte) string {
	buf := make([]byte, 0, len(prefix)+len(payload)+4)
	buf = append(buf, prefix...)
	buf = append(buf, payload...)
	buf = append(buf, checksum(buf)...)
	return Base58Encode(buf)
}

// Base58CheckDecode decodes a base58check string produced with a prefix of
// prefixLen bytes, verifies the checksum, and splits the result into the
// prefix and payload.
func Base58CheckDecode(s string, prefixLen int) (prefix, payload []byte, err error) {
	decoded, err := Base58Decode(s)
	if err != nil {
		return nil, nil, err
	}
	if len(decoded) < prefixLen+4 {
		return nil, nil, ErrInvalidDataLength
	}

	body := decoded[:len(decoded)-4]
	want := decoded[len(decoded)-4:]
	if !bytes.Equal(checksum(body), want) {
		return nil, nil, ErrInvalidChecksum
	}

	return body[:prefixLen], body[prefixLen:], nil
}
