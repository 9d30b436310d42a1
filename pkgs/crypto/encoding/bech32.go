package encoding

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

var (
	ErrMixedCase           = errors.New("encoding: bech32 string has mixed case")
	ErrHRPMismatch         = errors.New("encoding: bech32 human-readable part mismatch")
	ErrInvalidWitnessVer   = errors.New("encoding: invalid witness version")
	ErrInvalidProgramLen   = errors.New("encoding: invalid witness program length")
	ErrWrongChecksumVariant = errors.New("encoding: bech32 checksum does not match witness version's required variant")
)

// SegWitEncode encodes a witness version and program as a SegWit bech32
// address. Version 0 uses BIP-173 bech32; versions 1-16 use BIP-350
// bech32m.
func SegWitEncode(hrp string, witnessVersion byte, witnessProgram []byte) (string, error) {
	if witnessVersion > 16 {
		return "", ErrInvalidWitnessVer
	}
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, len(converted)+1)
	data = append(data, witnessVersion)
	data = append(data, converted...)

	if witnessVersion == 0 {
		return bech32.Encode(hrp, data)
	}
	return bech32.EncodeM(hrp, data)
}

// SegWitDecode decodes a SegWit bech32 address, verifying it carries the
// checksum variant its witness version requires and that its HRP matches
// wantHRP.
func SegWitDecode(wantHRP, s string) (witnessVersion byte, witnessProgram []byte, err error) {
	if s != strings.ToLower(s) && s != strings.ToUpper(s) {
		return 0, nil, ErrMixedCase
	}

	hrp, data, variant, err := bech32.DecodeGeneric(s)
	if err != nil {
		return 0, nil, err
	}
	if !strings.EqualFold(hrp, wantHRP) {
		return 0, nil, ErrHRPMismatch
	}
	if len(data) < 1 {
		return 0, nil, ErrInvalidProgramLen
	}

	witnessVersion = data[0]
	if witnessVersion > 16 {
		return 0, nil, ErrInvalidWitnessVer
	}

	wantVariant := bech32.VersionM
	if witnessVersion == 0 {
		wantVariant = bech32.Version0
	}
	if variant != wantVariant {
		return 0, nil, ErrWrongChecksumVariant
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return 0, nil, err
	}
	if witnessVersion == 0 && len(program) != 20 {
		return 0, nil, ErrInvalidProgramLen
	}

	return witnessVersion, program, nil
}
