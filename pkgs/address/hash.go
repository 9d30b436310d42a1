package address

import "github.com/study/crypto-accounts/pkgs/crypto/hash"

// Hash160 performs SHA256 followed by RIPEMD160 (Bitcoin/Dogecoin-style).
func Hash160(data []byte) []byte {
	return hash.Hash160(data)
}
