package bip44

import (
	"testing"

	"github.com/study/crypto-accounts/pkgs/bip39"
	"github.com/study/crypto-accounts/pkgs/chainparams"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestPathString(t *testing.T) {
	p := NewPath(chainparams.MainNetParams, 0, ExternalChain, 5)
	want := "m/44'/3'/0'/0/5"
	if got := p.String(); got != want {
		t.Fatalf("String() = %s, want %s", got, want)
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	p := NewPath(chainparams.TestNetParams, 2, InternalChain, 9)
	parsed, err := ParsePath(chainparams.TestNetParams, p.String())
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if parsed != p {
		t.Fatalf("parsed = %+v, want %+v", parsed, p)
	}
}

func TestParsePathRejectsWrongCoinType(t *testing.T) {
	p := NewPath(chainparams.MainNetParams, 0, ExternalChain, 0)
	if _, err := ParsePath(chainparams.TestNetParams, p.String()); err != ErrInvalidCoinType {
		t.Fatalf("err = %v, want ErrInvalidCoinType", err)
	}
}

func TestParsePathRejectsBadChange(t *testing.T) {
	if _, err := ParsePath(chainparams.MainNetParams, "m/44'/3'/0'/2/0"); err != ErrInvalidChange {
		t.Fatalf("err = %v, want ErrInvalidChange", err)
	}
}

func TestToBIP32PathHardensFirstThreeLevels(t *testing.T) {
	p := NewPath(chainparams.MainNetParams, 1, InternalChain, 7)
	got := p.ToBIP32Path()
	want := []uint32{
		0x80000000 + 44,
		0x80000000 + 3,
		0x80000000 + 1,
		1,
		7,
	}
	if len(got) != len(want) {
		t.Fatalf("len(path) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWalletDeriveAddressDeterministic(t *testing.T) {
	seed := bip39.NewSeed(testMnemonic, "")
	w, err := NewWalletFromSeed(seed, chainparams.MainNetParams)
	if err != nil {
		t.Fatalf("NewWalletFromSeed: %v", err)
	}

	k1, err := w.DeriveAddress(0, ExternalChain, 0)
	if err != nil {
		t.Fatalf("DeriveAddress: %v", err)
	}
	k2, err := w.DeriveAddress(0, ExternalChain, 0)
	if err != nil {
		t.Fatalf("DeriveAddress: %v", err)
	}
	if k1.String() != k2.String() {
		t.Fatal("derivation of the same path must be deterministic")
	}

	k3, err := w.DeriveAddress(0, ExternalChain, 1)
	if err != nil {
		t.Fatalf("DeriveAddress: %v", err)
	}
	if k1.String() == k3.String() {
		t.Fatal("different indices must derive different keys")
	}
}

func TestWalletDeriveKeyFromStringMatchesDeriveAddress(t *testing.T) {
	seed := bip39.NewSeed(testMnemonic, "")
	w, err := NewWalletFromSeed(seed, chainparams.MainNetParams)
	if err != nil {
		t.Fatalf("NewWalletFromSeed: %v", err)
	}

	viaPath, err := w.DeriveKeyFromString("m/44'/3'/0'/0/3")
	if err != nil {
		t.Fatalf("DeriveKeyFromString: %v", err)
	}
	viaFields, err := w.DeriveAddress(0, ExternalChain, 3)
	if err != nil {
		t.Fatalf("DeriveAddress: %v", err)
	}
	if viaPath.String() != viaFields.String() {
		t.Fatal("path-string derivation disagrees with field-based derivation")
	}
}

func TestAccountExternalAndInternalAddressesDiffer(t *testing.T) {
	seed := bip39.NewSeed(testMnemonic, "")
	w, err := NewWalletFromSeed(seed, chainparams.MainNetParams)
	if err != nil {
		t.Fatalf("NewWalletFromSeed: %v", err)
	}
	account, err := w.DeriveAccount(0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}

	ext, err := account.DeriveExternalAddress(0)
	if err != nil {
		t.Fatalf("DeriveExternalAddress: %v", err)
	}
	internal, err := account.DeriveInternalAddress(0)
	if err != nil {
		t.Fatalf("DeriveInternalAddress: %v", err)
	}
	if ext.String() == internal.String() {
		t.Fatal("external and internal chains must diverge")
	}
}

func TestAccountPublicKeyHasNoPrivateMaterial(t *testing.T) {
	seed := bip39.NewSeed(testMnemonic, "")
	w, err := NewWalletFromSeed(seed, chainparams.MainNetParams)
	if err != nil {
		t.Fatalf("NewWalletFromSeed: %v", err)
	}
	account, err := w.DeriveAccount(0)
	if err != nil {
		t.Fatalf("DeriveAccount: %v", err)
	}
	if account.PublicKey().IsPrivate() {
		t.Fatal("PublicKey() must return a neutered extended key")
	}
	if !account.Key().IsPrivate() {
		t.Fatal("Key() must return the private extended key")
	}
}

func TestDeriveAddressesBatch(t *testing.T) {
	seed := bip39.NewSeed(testMnemonic, "")
	w, err := NewWalletFromSeed(seed, chainparams.MainNetParams)
	if err != nil {
		t.Fatalf("NewWalletFromSeed: %v", err)
	}
	keys, err := w.DeriveAddresses(0, ExternalChain, 0, 3)
	if err != nil {
		t.Fatalf("DeriveAddresses: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("len(keys) = %d, want 3", len(keys))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		s := k.String()
		if seen[s] {
			t.Fatal("batch derivation produced a duplicate key")
		}
		seen[s] = true
	}
}

func TestGenerateWalletProducesValidMnemonic(t *testing.T) {
	w, err := GenerateWallet(128, "", chainparams.MainNetParams)
	if err != nil {
		t.Fatalf("GenerateWallet: %v", err)
	}
	if !bip39.ValidateMnemonic(w.Mnemonic()) {
		t.Fatal("generated wallet mnemonic failed validation")
	}
}
