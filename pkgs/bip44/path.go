// Package bip44 implements the fixed BIP-44 derivation path Dogecoin
// wallets use to walk a master key down to a spendable address:
// m/44'/coin_type'/account'/change/index.
package bip44

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/study/crypto-accounts/pkgs/bip32"
	"github.com/study/crypto-accounts/pkgs/chainparams"
)

// Purpose is the BIP-43 purpose field BIP-44 reserves.
const Purpose uint32 = 44

// Chain selects the external (receiving) or internal (change) address
// chain within an account.
const (
	ExternalChain uint32 = 0
	InternalChain uint32 = 1
)

var (
	ErrInvalidPath     = errors.New("bip44: malformed derivation path")
	ErrInvalidPurpose  = errors.New("bip44: path purpose is not 44'")
	ErrInvalidCoinType = errors.New("bip44: path coin type does not match chain")
	ErrInvalidChange   = errors.New("bip44: change must be 0 (external) or 1 (internal)")
)

// Path is a fully-qualified BIP-44 path: m/44'/coin_type'/account'/change/index.
type Path struct {
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

// NewPath builds a Path for chain's coin type.
func NewPath(chain chainparams.Params, account, change, addressIndex uint32) Path {
	return Path{
		CoinType:     chain.CoinType,
		Account:      account,
		Change:       change,
		AddressIndex: addressIndex,
	}
}

// DefaultPath returns account 0's first external address path for chain.
func DefaultPath(chain chainparams.Params) Path {
	return NewPath(chain, 0, ExternalChain, 0)
}

// AccountPath returns the hardened account-level path, m/44'/coin_type'/account'.
func (p Path) AccountPath() bip32.DerivationPath {
	return bip32.DerivationPath{
		bip32.Hardened(Purpose),
		bip32.Hardened(p.CoinType),
		bip32.Hardened(p.Account),
	}
}

// ToBIP32Path expands p into the five-level index list bip32.Child walks.
func (p Path) ToBIP32Path() bip32.DerivationPath {
	return bip32.DerivationPath{
		bip32.Hardened(Purpose),
		bip32.Hardened(p.CoinType),
		bip32.Hardened(p.Account),
		p.Change,
		p.AddressIndex,
	}
}

// String renders p in the conventional m/44'/c'/a'/change/index form.
func (p Path) String() string {
	return fmt.Sprintf("m/44'/%d'/%d'/%d/%d", p.CoinType, p.Account, p.Change, p.AddressIndex)
}

// WithAccount returns a copy of p with a new account index.
func (p Path) WithAccount(account uint32) Path {
	p.Account = account
	return p
}

// WithChange returns a copy of p on the given chain (external/internal).
func (p Path) WithChange(change uint32) Path {
	p.Change = change
	return p
}

// WithAddressIndex returns a copy of p at a new address index.
func (p Path) WithAddressIndex(index uint32) Path {
	p.AddressIndex = index
	return p
}

// Next returns the path for the following address index on the same chain.
func (p Path) Next() Path {
	return p.WithAddressIndex(p.AddressIndex + 1)
}

// ParsePath parses a string of the form m/44'/coin_type'/account'/change/index.
// chain's coin type must match the path's second component.
func ParsePath(chain chainparams.Params, path string) (Path, error) {
	parts := strings.Split(path, "/")
	if len(parts) != 6 || (parts[0] != "m" && parts[0] != "M") {
		return Path{}, ErrInvalidPath
	}

	purpose, err := parseHardenedIndex(parts[1])
	if err != nil {
		return Path{}, err
	}
	if purpose != Purpose {
		return Path{}, ErrInvalidPurpose
	}

	coinType, err := parseHardenedIndex(parts[2])
	if err != nil {
		return Path{}, err
	}
	if coinType != chain.CoinType {
		return Path{}, ErrInvalidCoinType
	}

	account, err := parseHardenedIndex(parts[3])
	if err != nil {
		return Path{}, err
	}

	change, err := parseIndex(parts[4])
	if err != nil {
		return Path{}, err
	}
	if change != ExternalChain && change != InternalChain {
		return Path{}, ErrInvalidChange
	}

	addressIndex, err := parseIndex(parts[5])
	if err != nil {
		return Path{}, err
	}

	return Path{
		CoinType:     coinType,
		Account:      account,
		Change:       change,
		AddressIndex: addressIndex,
	}, nil
}

func parseHardenedIndex(s string) (uint32, error) {
	if !strings.HasSuffix(s, "'") {
		return 0, ErrInvalidPath
	}
	return parseIndex(strings.TrimSuffix(s, "'"))
}

func parseIndex(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, ErrInvalidPath
	}
	return uint32(n), nil
}
