// Package chainparams provides the network-specific constants the rest of
// the engine needs: address version bytes, BIP-32 extended key magics, and
// the bech32 human-readable part. A Params value is immutable, process-wide
// configuration threaded explicitly through every operation that needs it —
// never a package-level global keyed by name.
package chainparams

// Network identifies which Dogecoin network a Params value belongs to.
type Network int

const (
	Main Network = iota
	Test
	Regtest
	Signet
)

// String returns the network's tag name.
func (n Network) String() string {
	switch n {
	case Main:
		return "main"
	case Test:
		return "test"
	case Regtest:
		return "regtest"
	case Signet:
		return "signet"
	default:
		return "unknown"
	}
}

// Params holds the wire-visible constants for one Dogecoin network.
type Params struct {
	Network Network

	// Base58Check version bytes.
	PubKeyHashAddrID byte // P2PKH address prefix
	ScriptHashAddrID byte // P2SH address prefix
	PrivateKeyID     byte // WIF prefix

	// BIP-32 extended key magics, big-endian.
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// Bech32 human-readable part for native SegWit addresses.
	Bech32HRP string

	// SLIP-44 / BIP-44 coin type.
	CoinType uint32
}

// MainNetParams is the Dogecoin production network.
var MainNetParams = Params{
	Network:          Main,
	PubKeyHashAddrID: 0x1E,
	ScriptHashAddrID: 0x16,
	PrivateKeyID:     0x9E,
	HDPrivateKeyID:   [4]byte{0x02, 0xfa, 0xc3, 0x98}, // dgpv
	HDPublicKeyID:    [4]byte{0x02, 0xfa, 0xca, 0xfd}, // dgub
	Bech32HRP:        "doge",
	CoinType:         3,
}

// TestNetParams is the Dogecoin public test network.
var TestNetParams = Params{
	Network:          Test,
	PubKeyHashAddrID: 0x71,
	ScriptHashAddrID: 0xC4,
	PrivateKeyID:     0xF1,
	HDPrivateKeyID:   [4]byte{0x04, 0x32, 0xa2, 0x43},
	HDPublicKeyID:    [4]byte{0x04, 0x32, 0xa9, 0xa8},
	Bech32HRP:        "tdge",
	CoinType:         1,
}

// RegressionNetParams is the local regression-test network. It shares
// testnet's P2SH prefix and extended-key magics, but has its own P2PKH and
// WIF prefixes and its own bech32 HRP.
var RegressionNetParams = Params{
	Network:          Regtest,
	PubKeyHashAddrID: 0x6F,
	ScriptHashAddrID: 0xC4,
	PrivateKeyID:     0xEF,
	HDPrivateKeyID:   [4]byte{0x04, 0x32, 0xa2, 0x43},
	HDPublicKeyID:    [4]byte{0x04, 0x32, 0xa9, 0xa8},
	Bech32HRP:        "dcrt",
	CoinType:         1,
}

// SignetParams is the signet network. Dogecoin has never shipped a distinct
// signet parameter set upstream, so signet reuses regtest's prefixes/magics
// and HRP (see DESIGN.md for this Open Question decision).
var SignetParams = Params{
	Network:          Signet,
	PubKeyHashAddrID: RegressionNetParams.PubKeyHashAddrID,
	ScriptHashAddrID: RegressionNetParams.ScriptHashAddrID,
	PrivateKeyID:     RegressionNetParams.PrivateKeyID,
	HDPrivateKeyID:   RegressionNetParams.HDPrivateKeyID,
	HDPublicKeyID:    RegressionNetParams.HDPublicKeyID,
	Bech32HRP:        RegressionNetParams.Bech32HRP,
	CoinType:         RegressionNetParams.CoinType,
}

// ByNetwork returns the Params for a named network.
func ByNetwork(n Network) (Params, bool) {
	switch n {
	case Main:
		return MainNetParams, true
	case Test:
		return TestNetParams, true
	case Regtest:
		return RegressionNetParams, true
	case Signet:
		return SignetParams, true
	default:
		return Params{}, false
	}
}

// all is the fixed search order used by the From* lookups below. Prefixes
// are disjoint across networks except where a network intentionally shares
// another's (testnet/regtest share the P2SH prefix and extended-key magics;
// signet shares all of regtest's), so a shared value resolves to the first
// network listed here.
var all = []Params{MainNetParams, TestNetParams, RegressionNetParams, SignetParams}

// FromB58PubKeyPrefix returns the chain whose P2PKH address prefix matches
// the given byte — the first byte of a base58check-decoded address.
func FromB58PubKeyPrefix(b byte) (Params, bool) {
	for _, p := range all {
		if p.PubKeyHashAddrID == b {
			return p, true
		}
	}
	return Params{}, false
}

// FromB58ScriptPrefix returns the chain whose P2SH address prefix matches b.
func FromB58ScriptPrefix(b byte) (Params, bool) {
	for _, p := range all {
		if p.ScriptHashAddrID == b {
			return p, true
		}
	}
	return Params{}, false
}

// FromWIFPrefix returns the chain whose WIF prefix matches b.
func FromWIFPrefix(b byte) (Params, bool) {
	for _, p := range all {
		if p.PrivateKeyID == b {
			return p, true
		}
	}
	return Params{}, false
}

// FromExtendedKeyMagic returns the chain and whether the magic denotes a
// private or public extended key, for a 4-byte BIP-32 version.
func FromExtendedKeyMagic(magic [4]byte) (p Params, isPrivate bool, ok bool) {
	for _, p := range all {
		if p.HDPrivateKeyID == magic {
			return p, true, true
		}
		if p.HDPublicKeyID == magic {
			return p, false, true
		}
	}
	return Params{}, false, false
}
