package encoding

import (
	"bytes"
	"testing"
)

func TestBase58CheckRoundTrip(t *testing.T) {
	prefix := []byte{0x1E}
	payload := bytes.Repeat([]byte{0xAB}, 20)

	s := Base58CheckEncode(prefix, payload)

	gotPrefix, gotPayload, err := Base58CheckDecode(s, len(prefix))
	if err != nil {
		t.Fatalf("Base58CheckDecode: %v", err)
	}
	if !bytes.Equal(gotPrefix, prefix) {
		t.Errorf("prefix = %x, want %x", gotPrefix, prefix)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Errorf("payload = %x, want %x", gotPayload, payload)
	}
}

func TestBase58CheckRoundTripMultiBytePrefix(t *testing.T) {
	prefix := []byte{0x02, 0xfa, 0xc3, 0x98}
	payload := bytes.Repeat([]byte{0x01}, 74)

	s := Base58CheckEncode(prefix, payload)

	gotPrefix, gotPayload, err := Base58CheckDecode(s, len(prefix))
	if err != nil {
		t.Fatalf("Base58CheckDecode: %v", err)
	}
	if !bytes.Equal(gotPrefix, prefix) {
		t.Errorf("prefix = %x, want %x", gotPrefix, prefix)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Errorf("payload = %x, want %x", gotPayload, payload)
	}
}

func TestBase58CheckDecodeBadChecksum(t *testing.T) {
	s := Base58CheckEncode([]byte{0x1E}, bytes.Repeat([]byte{0xAB}, 20))
	corrupted := []byte(s)
	if corrupted[0] == 'a' {
		corrupted[0] = 'b'
	} else {
		corrupted[0] = 'a'
	}

	_, _, err := Base58CheckDecode(string(corrupted), 1)
	if err == nil {
		t.Fatal("expected error decoding corrupted base58check string")
	}
}

func TestBase58CheckDecodeTooShort(t *testing.T) {
	_, _, err := Base58CheckDecode(Base58Encode([]byte{0x01, 0x02}), 4)
	if err != ErrInvalidDataLength {
		t.Fatalf("err = %v, want ErrInvalidDataLength", err)
	}
}

func TestSegWitRoundTripV0(t *testing.T) {
	program := bytes.Repeat([]byte{0x14}, 20)

	s, err := SegWitEncode("doge", 0, program)
	if err != nil {
		t.Fatalf("SegWitEncode: %v", err)
	}

	ver, got, err := SegWitDecode("doge", s)
	if err != nil {
		t.Fatalf("SegWitDecode: %v", err)
	}
	if ver != 0 {
		t.Errorf("version = %d, want 0", ver)
	}
	if !bytes.Equal(got, program) {
		t.Errorf("program = %x, want %x", got, program)
	}
}

func TestSegWitDecodeRejectsMixedCase(t *testing.T) {
	s, err := SegWitEncode("doge", 0, bytes.Repeat([]byte{0x01}, 20))
	if err != nil {
		t.Fatalf("SegWitEncode: %v", err)
	}
	mixed := strings_ToUpperLastByte(s[:1]) + s[1:]

	_, _, err = SegWitDecode("doge", mixed)
	if err != ErrMixedCase {
		t.Fatalf("err = %v, want ErrMixedCase", err)
	}
}

func strings_ToUpperLastByte(s string) string {
	b := []byte(s[len(s)-1:])
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func TestSegWitDecodeRejectsHRPMismatch(t *testing.T) {
	s, err := SegWitEncode("doge", 0, bytes.Repeat([]byte{0x01}, 20))
	if err != nil {
		t.Fatalf("SegWitEncode: %v", err)
	}

	_, _, err = SegWitDecode("tdge", s)
	if err != ErrHRPMismatch {
		t.Fatalf("err = %v, want ErrHRPMismatch", err)
	}
}
