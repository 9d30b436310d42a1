// Package dogecoin is the public facade for the key-and-address engine:
// it composes chainparams, secp256k1, bip32, bip39, bip44, address, and
// message into the flat operation surface a wallet caller needs, wrapping
// every underlying error in a classified Kind.
package dogecoin

import (
	"encoding/hex"

	"github.com/study/crypto-accounts/pkgs/address"
	"github.com/study/crypto-accounts/pkgs/bip32"
	"github.com/study/crypto-accounts/pkgs/bip39"
	"github.com/study/crypto-accounts/pkgs/bip44"
	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/secp256k1"
	"github.com/study/crypto-accounts/pkgs/message"
)

// GeneratePrivPubKeypair generates a fresh private key and returns its WIF
// encoding alongside the P2PKH address of the matching public key.
func GeneratePrivPubKeypair(chain chainparams.Params) (wif, p2pkh string, err error) {
	priv, err := secp256k1.Generate()
	if err != nil {
		return "", "", classify(err)
	}
	defer priv.Wipe()

	addr, err := address.P2PKH(chain, priv.PubKey().Compressed())
	if err != nil {
		return "", "", classify(err)
	}
	return priv.EncodeWIF(chain), addr, nil
}

// GenPrivatekey generates a fresh private key, returning its WIF and hex
// encodings.
func GenPrivatekey(chain chainparams.Params) (wif, hexKey string, err error) {
	priv, err := secp256k1.Generate()
	if err != nil {
		return "", "", classify(err)
	}
	defer priv.Wipe()
	return priv.EncodeWIF(chain), hex.EncodeToString(priv.Bytes()), nil
}

// PubkeyFromPrivatekey decodes a WIF and returns the hex-encoded
// compressed public key.
func PubkeyFromPrivatekey(chain chainparams.Params, wif string) (string, error) {
	priv, _, err := secp256k1.DecodeWIF(chain, wif)
	if err != nil {
		return "", classify(err)
	}
	defer priv.Wipe()
	return hex.EncodeToString(priv.PubKey().Compressed()), nil
}

// AddressFromPrivkey decodes a WIF and returns the P2PKH address of its
// public key.
func AddressFromPrivkey(chain chainparams.Params, wif string) (string, error) {
	priv, _, err := secp256k1.DecodeWIF(chain, wif)
	if err != nil {
		return "", classify(err)
	}
	defer priv.Wipe()
	return address.P2PKH(chain, priv.PubKey().Compressed())
}

// AddressesFromPubkey derives all three address forms for a compressed
// public key given as hex.
func AddressesFromPubkey(chain chainparams.Params, pubkeyHex string) (p2pkh, p2shP2wpkh, p2wpkh string, err error) {
	pub, err := hex.DecodeString(pubkeyHex)
	if err != nil {
		return "", "", "", &Error{Kind: KindBadEncoding, Err: err}
	}
	p2pkh, p2shP2wpkh, p2wpkh, err = address.AllForPublicKey(chain, pub)
	if err != nil {
		return "", "", "", classify(err)
	}
	return p2pkh, p2shP2wpkh, p2wpkh, nil
}

// VerifyPrivPubKeypair reports whether wif's private key produces p2pkh on
// chain.
func VerifyPrivPubKeypair(chain chainparams.Params, wif, p2pkh string) bool {
	priv, _, err := secp256k1.DecodeWIF(chain, wif)
	if err != nil {
		return false
	}
	defer priv.Wipe()
	addr, err := address.P2PKH(chain, priv.PubKey().Compressed())
	if err != nil {
		return false
	}
	return addr == p2pkh
}

// VerifyP2PKHAddress reports whether addr is base58check-valid for chain:
// the checksum verifies, the version byte is chain's P2PKH prefix, and the
// payload is 20 bytes. No knowledge of the underlying key is required.
func VerifyP2PKHAddress(chain chainparams.Params, addr string) bool {
	typ, ok := address.Validate(chain, addr)
	return ok && typ == address.TypeP2PKH
}

// HDGenMaster generates a fresh BIP-32 master key from CSPRNG-drawn seed
// material and returns its serialized extended private key.
func HDGenMaster(chain chainparams.Params) (string, error) {
	priv, err := secp256k1.Generate()
	if err != nil {
		return "", classify(err)
	}
	defer priv.Wipe()

	seed := priv.Bytes()
	defer func() {
		for i := range seed {
			seed[i] = 0
		}
	}()

	master, err := bip32.NewMasterKey(seed, chain)
	if err != nil {
		return "", classify(err)
	}
	return master.String(), nil
}

// GenerateHDMasterKeypair generates a master key and returns it alongside
// the P2PKH address of its public key.
func GenerateHDMasterKeypair(chain chainparams.Params) (xpriv, p2pkhOfMaster string, err error) {
	xpriv, err = HDGenMaster(chain)
	if err != nil {
		return "", "", err
	}
	// Regtest and signet share testnet's extended-key magics, so the xpriv
	// is reparsed against the caller's known chain rather than the magic
	// alone (see bip32.ParseExtendedKeyForChain).
	master, err := bip32.ParseExtendedKeyForChain(xpriv, chain)
	if err != nil {
		return "", "", classify(err)
	}
	p2pkhOfMaster, err = address.P2PKH(chain, master.PublicKeyBytes())
	if err != nil {
		return "", "", classify(err)
	}
	return xpriv, p2pkhOfMaster, nil
}

// DeriveHDPubFromMaster parses a serialized extended key (its chain and
// private/public-ness inferred from the magic) and returns the P2PKH
// address of its public key. Regtest and signet keys resolve as testnet
// here, since they share its extended-key magics and no chain is given to
// disambiguate; callers that know the chain should use HDDerive instead.
func DeriveHDPubFromMaster(xkey string) (string, error) {
	key, err := bip32.ParseExtendedKey(xkey)
	if err != nil {
		return "", classify(err)
	}
	return address.P2PKH(key.ChainParams(), key.PublicKeyBytes())
}

// VerifyHDMasterKeypair reports whether xpriv's public key produces
// p2pkh on chain.
func VerifyHDMasterKeypair(chain chainparams.Params, xpriv, p2pkh string) bool {
	master, err := bip32.ParseExtendedKeyForChain(xpriv, chain)
	if err != nil || !master.IsPrivate() {
		return false
	}
	addr, err := address.P2PKH(chain, master.PublicKeyBytes())
	if err != nil {
		return false
	}
	return addr == p2pkh
}

// HDDerive walks xkey through path and returns the resulting serialized
// extended key.
func HDDerive(chain chainparams.Params, xkey, path string) (string, error) {
	key, err := bip32.ParseExtendedKeyForChain(xkey, chain)
	if err != nil {
		return "", classify(err)
	}
	derived, err := key.DeriveFromPathString(path)
	if err != nil {
		return "", classify(err)
	}
	return derived.String(), nil
}

// DeriveByPath walks masterkey through path and returns either the
// serialized extended key (wantPrivate) or the P2PKH address of the
// derived node's public key. As with DeriveHDPubFromMaster, a regtest or
// signet masterkey resolves as testnet since no chain is given here to
// break the magic tie.
func DeriveByPath(masterkey, path string, wantPrivate bool) (string, error) {
	key, err := bip32.ParseExtendedKey(masterkey)
	if err != nil {
		return "", classify(err)
	}
	derived, err := key.DeriveFromPathString(path)
	if err != nil {
		return "", classify(err)
	}
	if wantPrivate {
		return derived.String(), nil
	}
	return address.P2PKH(derived.ChainParams(), derived.PublicKeyBytes())
}

// DeriveBIP44 derives the BIP-44 leaf at account/change/index below
// masterkey and returns either the serialized extended key (wantPrivate)
// or the P2PKH address of its public key. Same regtest/signet-as-testnet
// caveat as DeriveByPath applies to masterkey's inferred chain.
func DeriveBIP44(masterkey string, account, change, index uint32, wantPrivate bool) (string, error) {
	key, err := bip32.ParseExtendedKey(masterkey)
	if err != nil {
		return "", classify(err)
	}
	p := bip44.NewPath(key.ChainParams(), account, change, index)
	derived, err := key.DeriveFromPath(p.ToBIP32Path())
	if err != nil {
		return "", classify(err)
	}
	if wantPrivate {
		return derived.String(), nil
	}
	return address.P2PKH(derived.ChainParams(), derived.PublicKeyBytes())
}

// SeedFromMnemonic derives the 64-byte BIP-39 seed from mnemonic and
// passphrase.
func SeedFromMnemonic(mnemonic, passphrase string) []byte {
	return bip39.NewSeed(mnemonic, passphrase)
}

// DeriveFromMnemonic derives account/change/index's P2PKH address from a
// BIP-39 mnemonic and passphrase on chain.
func DeriveFromMnemonic(chain chainparams.Params, account, change, index uint32, mnemonic, passphrase string) (string, error) {
	w, err := bip44.NewWalletFromMnemonic(mnemonic, passphrase, chain)
	if err != nil {
		return "", classify(err)
	}
	key, err := w.DeriveAddress(account, change, index)
	if err != nil {
		return "", classify(err)
	}
	return address.P2PKH(chain, key.PublicKeyBytes())
}

// SignMessage signs msg with priv (hex-encoded 32-byte scalar) and
// returns the base64-encoded recoverable signature.
func SignMessage(privHex, msg string) (string, error) {
	raw, err := hex.DecodeString(privHex)
	if err != nil {
		return "", &Error{Kind: KindBadEncoding, Err: err}
	}
	priv, err := secp256k1.NewPrivKeyFromBytes(raw)
	if err != nil {
		return "", classify(err)
	}
	defer priv.Wipe()
	return message.Sign(priv, msg)
}

// VerifyMessage reports whether sig is a valid signature of msg by addr's
// holder. Any failure (malformed signature, recovery failure, or address
// mismatch) uniformly returns false.
func VerifyMessage(chain chainparams.Params, addr, sig, msg string) bool {
	return message.Verify(chain, addr, sig, msg)
}
