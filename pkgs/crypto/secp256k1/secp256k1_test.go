package secp256k1

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/study/crypto-accounts/pkgs/chainparams"
)

func hexToBytes(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b
}

func TestScalarBaseMultKnownVector(t *testing.T) {
	one := hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")
	result := ScalarBaseMult(one)
	if !result.Equal(Generator()) {
		t.Error("ScalarBaseMult(1) should equal G")
	}
}

func TestAddDoubleConsistency(t *testing.T) {
	g := Generator()
	twoG := Double(g)
	sumG := Add(g, g)
	if !twoG.Equal(sumG) {
		t.Error("2G should equal G + G")
	}
}

func TestIsValidPrivateKey(t *testing.T) {
	tests := []struct {
		name  string
		key   []byte
		valid bool
	}{
		{"valid low", hexToBytes("0000000000000000000000000000000000000000000000000000000000000001"), true},
		{"valid near n", hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"), true},
		{"zero", hexToBytes("0000000000000000000000000000000000000000000000000000000000000000"), false},
		{"equal n", hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"), false},
		{"greater than n", hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364142"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPrivateKey(tt.key); got != tt.valid {
				t.Errorf("IsValidPrivateKey() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestAddPrivateKeysModN(t *testing.T) {
	nMinus1 := hexToBytes("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140")
	two := hexToBytes("0000000000000000000000000000000000000000000000000000000000000002")
	got := AddPrivateKeys(nMinus1, two)
	want := hexToBytes("0000000000000000000000000000000000000000000000000000000000000001")
	if !bytes.Equal(got, want) {
		t.Errorf("AddPrivateKeys wraparound = %x, want %x", got, want)
	}
}

func TestGenerateProducesDistinctValidKeys(t *testing.T) {
	k1, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	k2, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bytes.Equal(k1.Bytes(), k2.Bytes()) {
		t.Fatal("two generated keys must differ")
	}
	if !IsValidPrivateKey(k1.Bytes()) || !IsValidPrivateKey(k2.Bytes()) {
		t.Fatal("generated keys must be valid scalars")
	}
}

func TestWipeZeroesKey(t *testing.T) {
	k, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	k.Wipe()
	for _, b := range k.key {
		if b != 0 {
			t.Fatal("Wipe left non-zero bytes")
		}
	}
}

func TestWIFRoundTrip(t *testing.T) {
	k, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wif := k.EncodeWIF(chainparams.MainNetParams)

	decoded, compressed, err := DecodeWIF(chainparams.MainNetParams, wif)
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	if !compressed {
		t.Fatal("this engine only emits compressed WIFs")
	}
	if !bytes.Equal(decoded.Bytes(), k.Bytes()) {
		t.Fatal("decoded key does not match original")
	}
}

func TestWIFDecodeWrongNetwork(t *testing.T) {
	k, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wif := k.EncodeWIF(chainparams.MainNetParams)

	if _, _, err := DecodeWIF(chainparams.TestNetParams, wif); err != ErrWrongNetwork {
		t.Fatalf("err = %v, want ErrWrongNetwork", err)
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	k, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	digest := sha256.Sum256([]byte("hello dogecoin"))

	r, s, err := k.SignHash(digest[:])
	if err != nil {
		t.Fatalf("SignHash: %v", err)
	}

	pub := k.PubKey()
	if !pub.Verify(digest[:], r, s) {
		t.Fatal("Verify rejected a valid signature")
	}
}

func TestSignRecoverRoundTrip(t *testing.T) {
	k, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	digest := sha256.Sum256([]byte("recoverable message"))

	sig, err := k.SignHashRecoverable(digest[:])
	if err != nil {
		t.Fatalf("SignHashRecoverable: %v", err)
	}

	recovered, wasCompressed, err := Recover(sig, digest[:])
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if !wasCompressed {
		t.Fatal("expected compressed recovery flag")
	}
	if !bytes.Equal(recovered.Compressed(), k.PubKey().Compressed()) {
		t.Fatal("recovered pubkey does not match signer")
	}
}
