package bip44

import (
	"github.com/study/crypto-accounts/pkgs/bip32"
	"github.com/study/crypto-accounts/pkgs/chainparams"
)

// Account is a hardened account-level extended key: m/44'/coin_type'/account'.
// Its external and internal address chains are derived from it on demand.
type Account struct {
	chain      chainparams.Params
	index      uint32
	accountKey *bip32.ExtendedKey
}

// NewAccount derives account index from master, a private master key at
// depth 0.
func NewAccount(master *bip32.ExtendedKey, chain chainparams.Params, index uint32) (*Account, error) {
	path := NewPath(chain, index, ExternalChain, 0).AccountPath()
	accountKey, err := master.DeriveFromPath(path)
	if err != nil {
		return nil, err
	}
	return &Account{chain: chain, index: index, accountKey: accountKey}, nil
}

// Index returns the account's hardened index.
func (a *Account) Index() uint32 {
	return a.index
}

// Key returns the account's private extended key.
func (a *Account) Key() *bip32.ExtendedKey {
	return a.accountKey
}

// PublicKey returns the account's neutered (watch-only) extended key.
func (a *Account) PublicKey() *bip32.ExtendedKey {
	return a.accountKey.Neuter()
}

// DeriveAddress derives the extended key at change/index below the account.
func (a *Account) DeriveAddress(change, index uint32) (*bip32.ExtendedKey, error) {
	changeKey, err := a.accountKey.Child(change)
	if err != nil {
		return nil, err
	}
	return changeKey.Child(index)
}

// DeriveExternalAddress derives the index'th receiving address.
func (a *Account) DeriveExternalAddress(index uint32) (*bip32.ExtendedKey, error) {
	return a.DeriveAddress(ExternalChain, index)
}

// DeriveInternalAddress derives the index'th change address.
func (a *Account) DeriveInternalAddress(index uint32) (*bip32.ExtendedKey, error) {
	return a.DeriveAddress(InternalChain, index)
}

// DeriveAddresses derives count consecutive addresses on the given chain,
// starting at startIndex.
func (a *Account) DeriveAddresses(change, startIndex, count uint32) ([]*bip32.ExtendedKey, error) {
	keys := make([]*bip32.ExtendedKey, 0, count)
	for i := uint32(0); i < count; i++ {
		key, err := a.DeriveAddress(change, startIndex+i)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Path returns the path of the account's first receiving address,
// m/44'/coin_type'/account'/0/0; its AccountPath method gives the
// account-level m/44'/coin_type'/account'.
func (a *Account) Path() Path {
	return NewPath(a.chain, a.index, ExternalChain, 0)
}

// ExternalPath returns the path of the index'th receiving address.
func (a *Account) ExternalPath(index uint32) Path {
	return NewPath(a.chain, a.index, ExternalChain, index)
}

// InternalPath returns the path of the index'th change address.
func (a *Account) InternalPath(index uint32) Path {
	return NewPath(a.chain, a.index, InternalChain, index)
}

// AddressInfo bundles a derived key with the path that produced it.
type AddressInfo struct {
	Path Path
	Key  *bip32.ExtendedKey
}

// GetAddressInfo derives the address at change/index and returns it with
// its path.
func (a *Account) GetAddressInfo(change, index uint32) (*AddressInfo, error) {
	key, err := a.DeriveAddress(change, index)
	if err != nil {
		return nil, err
	}
	var p Path
	if change == ExternalChain {
		p = a.ExternalPath(index)
	} else {
		p = a.InternalPath(index)
	}
	return &AddressInfo{Path: p, Key: key}, nil
}
