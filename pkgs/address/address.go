// Package address derives Dogecoin addresses from public keys: legacy
// P2PKH, wrapped-SegWit P2SH-P2WPKH, and native SegWit P2WPKH (bech32),
// all parameterized over a chainparams.Params.
package address

import (
	"errors"

	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/encoding"
)

var (
	ErrInvalidPublicKey  = errors.New("address: invalid public key")
	ErrInvalidAddress    = errors.New("address: invalid address")
	ErrEmptyScript       = errors.New("address: empty script")
	ErrRequiresCompressed = errors.New("address: P2WPKH requires a compressed public key")
)

// Type identifies which address format a Dogecoin address uses.
type Type int

const (
	TypeP2PKH Type = iota
	TypeP2SH
	TypeP2WPKH
)

// P2PKH derives a legacy pay-to-public-key-hash address from a public key
// (compressed 33 bytes or uncompressed 65 bytes).
func P2PKH(chain chainparams.Params, publicKey []byte) (string, error) {
	if len(publicKey) != 33 && len(publicKey) != 65 {
		return "", ErrInvalidPublicKey
	}
	hash := Hash160(publicKey)
	return encoding.Base58CheckEncode([]byte{chain.PubKeyHashAddrID}, hash), nil
}

// P2SH derives a pay-to-script-hash address from a redeem script.
func P2SH(chain chainparams.Params, redeemScript []byte) (string, error) {
	if len(redeemScript) == 0 {
		return "", ErrEmptyScript
	}
	hash := Hash160(redeemScript)
	return encoding.Base58CheckEncode([]byte{chain.ScriptHashAddrID}, hash), nil
}

// nestedWitnessScript builds the P2WPKH witness program redeem script
// 0x00 0x14 <hash160(pubkey)> that a P2SH-wrapped SegWit address hashes.
func nestedWitnessScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 2+len(pubKeyHash))
	script = append(script, 0x00, byte(len(pubKeyHash)))
	return append(script, pubKeyHash...)
}

// P2SHSegWit derives a P2SH-wrapped native SegWit (P2SH-P2WPKH) address
// from a compressed public key.
func P2SHSegWit(chain chainparams.Params, publicKey []byte) (string, error) {
	if len(publicKey) != 33 {
		return "", ErrRequiresCompressed
	}
	pubKeyHash := Hash160(publicKey)
	redeemScript := nestedWitnessScript(pubKeyHash)
	return P2SH(chain, redeemScript)
}

// P2WPKH derives a native SegWit P2WPKH (bech32) address from a compressed
// public key.
func P2WPKH(chain chainparams.Params, publicKey []byte) (string, error) {
	if len(publicKey) != 33 {
		return "", ErrRequiresCompressed
	}
	pubKeyHash := Hash160(publicKey)
	return encoding.SegWitEncode(chain.Bech32HRP, 0, pubKeyHash)
}

// AllForPublicKey derives the three address forms this engine supports
// for a single compressed public key: P2PKH, P2SH-P2WPKH, and P2WPKH.
func AllForPublicKey(chain chainparams.Params, publicKey []byte) (p2pkh, p2shSegwit, p2wpkh string, err error) {
	p2pkh, err = P2PKH(chain, publicKey)
	if err != nil {
		return "", "", "", err
	}
	p2shSegwit, err = P2SHSegWit(chain, publicKey)
	if err != nil {
		return "", "", "", err
	}
	p2wpkh, err = P2WPKH(chain, publicKey)
	if err != nil {
		return "", "", "", err
	}
	return p2pkh, p2shSegwit, p2wpkh, nil
}

// Validate reports whether address decodes as a base58check or bech32
// address belonging to chain, and which form it is.
func Validate(chain chainparams.Params, addr string) (Type, bool) {
	if prefix, payload, err := encoding.Base58CheckDecode(addr, 1); err == nil {
		switch {
		case len(prefix) == 1 && prefix[0] == chain.PubKeyHashAddrID && len(payload) == 20:
			return TypeP2PKH, true
		case len(prefix) == 1 && prefix[0] == chain.ScriptHashAddrID && len(payload) == 20:
			return TypeP2SH, true
		}
		return 0, false
	}
	if witnessVersion, program, err := encoding.SegWitDecode(chain.Bech32HRP, addr); err == nil {
		if witnessVersion == 0 && len(program) == 20 {
			return TypeP2WPKH, true
		}
	}
	return 0, false
}
