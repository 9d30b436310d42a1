package bip44

import (
	"github.com/study/crypto-accounts/pkgs/bip32"
	"github.com/study/crypto-accounts/pkgs/bip39"
	"github.com/study/crypto-accounts/pkgs/chainparams"
)

// Wallet ties a BIP-32 master key to the mnemonic it was generated from (if
// any) and the chain its derivations target.
type Wallet struct {
	masterKey *bip32.ExtendedKey
	mnemonic  string
	chain     chainparams.Params
}

// NewWalletFromSeed builds a wallet directly from a BIP-32 seed.
func NewWalletFromSeed(seed []byte, chain chainparams.Params) (*Wallet, error) {
	master, err := bip32.NewMasterKey(seed, chain)
	if err != nil {
		return nil, err
	}
	return &Wallet{masterKey: master, chain: chain}, nil
}

// NewWalletFromMnemonic derives a wallet's seed from a BIP-39 mnemonic and
// optional passphrase.
func NewWalletFromMnemonic(mnemonic, passphrase string, chain chainparams.Params) (*Wallet, error) {
	if !bip39.ValidateMnemonic(mnemonic) {
		return nil, bip39.ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	master, err := bip32.NewMasterKey(seed, chain)
	if err != nil {
		return nil, err
	}
	return &Wallet{masterKey: master, mnemonic: mnemonic, chain: chain}, nil
}

// GenerateWallet creates a brand-new wallet with a freshly generated
// mnemonic of the given entropy size.
func GenerateWallet(entropyBits int, passphrase string, chain chainparams.Params) (*Wallet, error) {
	mnemonic, seed, err := bip39.GenerateMnemonicAndSeed(entropyBits, passphrase)
	if err != nil {
		return nil, err
	}
	master, err := bip32.NewMasterKey(seed, chain)
	if err != nil {
		return nil, err
	}
	return &Wallet{masterKey: master, mnemonic: mnemonic, chain: chain}, nil
}

// MasterKey returns the wallet's root extended private key.
func (w *Wallet) MasterKey() *bip32.ExtendedKey {
	return w.masterKey
}

// Mnemonic returns the wallet's mnemonic, empty if it was built from a raw
// seed.
func (w *Wallet) Mnemonic() string {
	return w.mnemonic
}

// DeriveAccount derives the accountIndex'th hardened account below the
// master key.
func (w *Wallet) DeriveAccount(accountIndex uint32) (*Account, error) {
	return NewAccount(w.masterKey, w.chain, accountIndex)
}

// DeriveKey walks path below the wallet's master key.
func (w *Wallet) DeriveKey(path Path) (*bip32.ExtendedKey, error) {
	return w.masterKey.DeriveFromPath(path.ToBIP32Path())
}

// DeriveKeyFromString parses and walks a BIP-44 path string.
func (w *Wallet) DeriveKeyFromString(pathStr string) (*bip32.ExtendedKey, error) {
	path, err := ParsePath(w.chain, pathStr)
	if err != nil {
		return nil, err
	}
	return w.DeriveKey(path)
}

// DeriveAddress derives the key at account/change/index below the master.
func (w *Wallet) DeriveAddress(account, change, index uint32) (*bip32.ExtendedKey, error) {
	return w.DeriveKey(NewPath(w.chain, account, change, index))
}

// GetAddressInfo derives account/change/index and returns it with its path.
func (w *Wallet) GetAddressInfo(account, change, index uint32) (*AddressInfo, error) {
	p := NewPath(w.chain, account, change, index)
	key, err := w.DeriveKey(p)
	if err != nil {
		return nil, err
	}
	return &AddressInfo{Path: p, Key: key}, nil
}

// DeriveAddresses derives count consecutive addresses for account/change,
// starting at startIndex.
func (w *Wallet) DeriveAddresses(account, change, startIndex, count uint32) ([]*bip32.ExtendedKey, error) {
	keys := make([]*bip32.ExtendedKey, 0, count)
	for i := uint32(0); i < count; i++ {
		key, err := w.DeriveAddress(account, change, startIndex+i)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
