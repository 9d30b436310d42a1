package bip39

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestNewSeedKnownVector(t *testing.T) {
	// BIP-39 official test vector: 12-word "abandon...about" mnemonic.
	const mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	const wantHex = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e"

	seed := NewSeed(mnemonic, "")
	want, _ := hex.DecodeString(wantHex)
	if !bytes.Equal(seed, want) {
		t.Fatalf("seed = %x, want %x", seed, want)
	}
}

func TestNewSeedWithPassphrase(t *testing.T) {
	const mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	const wantHex = "3b5df16df2157104cfdd22830162a5e170c0161653e3afe6c88defeefb0818c793dbb28ab0ab09b1739b076273e" +
		"ba5eab4e0a3ba4f08e1851ab67db6cafb0e4"

	seed := NewSeed(mnemonic, "TREZOR")
	want, _ := hex.DecodeString(wantHex)
	if !bytes.Equal(seed, want) {
		t.Fatalf("seed with passphrase = %x, want %x", seed, want)
	}
}

func TestGenerateMnemonicAndSeedRoundTrip(t *testing.T) {
	mnemonic, seed, err := GenerateMnemonicAndSeed(128, "")
	if err != nil {
		t.Fatalf("GenerateMnemonicAndSeed: %v", err)
	}
	if !ValidateMnemonic(mnemonic) {
		t.Fatal("generated mnemonic failed validation")
	}
	if len(seed) != SeedSize {
		t.Fatalf("seed length = %d, want %d", len(seed), SeedSize)
	}
	if !bytes.Equal(seed, NewSeed(mnemonic, "")) {
		t.Fatal("NewSeed is not deterministic over the same mnemonic")
	}
}

func TestValidateMnemonicRejectsBadChecksum(t *testing.T) {
	const bad = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	if ValidateMnemonic(bad) {
		t.Fatal("expected checksum validation to fail")
	}
}

func TestGenerateEntropyRejectsInvalidSize(t *testing.T) {
	if _, err := GenerateEntropy(100); err != ErrInvalidEntropyLength {
		t.Fatalf("err = %v, want ErrInvalidEntropyLength", err)
	}
}
