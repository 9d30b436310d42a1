package dogecoin

import (
	"errors"
	"fmt"

	"github.com/study/crypto-accounts/pkgs/bip32"
	"github.com/study/crypto-accounts/pkgs/bip39"
	"github.com/study/crypto-accounts/pkgs/bip44"
	"github.com/study/crypto-accounts/pkgs/chainparams"
	"github.com/study/crypto-accounts/pkgs/crypto/encoding"
	"github.com/study/crypto-accounts/pkgs/crypto/secp256k1"
)

// Kind classifies a facade error without requiring callers to match on
// sentinel values from every sub-package.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadEncoding
	KindBadChecksum
	KindWrongNetwork
	KindBadLength
	KindInvalidScalar
	KindInvalidPoint
	KindInvalidDerivation
	KindHardenedOnPublic
	KindMalformedExtKey
	KindInvalidSeed
	KindBadSignature
	KindRngFailure
	KindInvalidPath
)

func (k Kind) String() string {
	switch k {
	case KindBadEncoding:
		return "BadEncoding"
	case KindBadChecksum:
		return "BadChecksum"
	case KindWrongNetwork:
		return "WrongNetwork"
	case KindBadLength:
		return "BadLength"
	case KindInvalidScalar:
		return "InvalidScalar"
	case KindInvalidPoint:
		return "InvalidPoint"
	case KindInvalidDerivation:
		return "InvalidDerivation"
	case KindHardenedOnPublic:
		return "HardenedOnPublic"
	case KindMalformedExtKey:
		return "MalformedExtKey"
	case KindInvalidSeed:
		return "InvalidSeed"
	case KindBadSignature:
		return "BadSignature"
	case KindRngFailure:
		return "RngFailure"
	case KindInvalidPath:
		return "InvalidPath"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying sub-package error with its classified Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("dogecoin: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify maps an error from any of the composed sub-packages to its Kind.
// Errors not recognized here surface as KindUnknown rather than being
// silently dropped.
func classify(err error) *Error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, encoding.ErrInvalidBase58),
		errors.Is(err, encoding.ErrMixedCase),
		errors.Is(err, encoding.ErrHRPMismatch),
		errors.Is(err, encoding.ErrInvalidWitnessVer),
		errors.Is(err, encoding.ErrInvalidProgramLen),
		errors.Is(err, encoding.ErrWrongChecksumVariant):
		return &Error{Kind: KindBadEncoding, Err: err}
	case errors.Is(err, encoding.ErrInvalidChecksum):
		return &Error{Kind: KindBadChecksum, Err: err}
	case errors.Is(err, encoding.ErrInvalidDataLength), errors.Is(err, encoding.ErrPayloadTooLarge):
		return &Error{Kind: KindBadLength, Err: err}
	case errors.Is(err, secp256k1.ErrWrongNetwork):
		return &Error{Kind: KindWrongNetwork, Err: err}
	case errors.Is(err, secp256k1.ErrBadLength), errors.Is(err, secp256k1.ErrNotCompressed):
		return &Error{Kind: KindBadLength, Err: err}
	case errors.Is(err, secp256k1.ErrInvalidScalar):
		return &Error{Kind: KindInvalidScalar, Err: err}
	case errors.Is(err, secp256k1.ErrBadChecksum):
		return &Error{Kind: KindBadChecksum, Err: err}
	case errors.Is(err, secp256k1.ErrBadSignature):
		return &Error{Kind: KindBadSignature, Err: err}
	case errors.Is(err, secp256k1.ErrRngFailure):
		return &Error{Kind: KindRngFailure, Err: err}
	case errors.Is(err, bip32.ErrHardenedFromPublic):
		return &Error{Kind: KindHardenedOnPublic, Err: err}
	case errors.Is(err, bip32.ErrInvalidDerivation):
		return &Error{Kind: KindInvalidDerivation, Err: err}
	case errors.Is(err, bip32.ErrMalformedExtKey):
		return &Error{Kind: KindMalformedExtKey, Err: err}
	case errors.Is(err, bip32.ErrInvalidSeed):
		return &Error{Kind: KindInvalidSeed, Err: err}
	case errors.Is(err, bip32.ErrInvalidPath):
		return &Error{Kind: KindInvalidPath, Err: err}
	case errors.Is(err, bip39.ErrInvalidEntropyLength),
		errors.Is(err, bip39.ErrInvalidMnemonicLength),
		errors.Is(err, bip39.ErrInvalidMnemonic),
		errors.Is(err, bip39.ErrInvalidChecksum):
		return &Error{Kind: KindInvalidSeed, Err: err}
	case errors.Is(err, bip44.ErrInvalidPath),
		errors.Is(err, bip44.ErrInvalidPurpose),
		errors.Is(err, bip44.ErrInvalidCoinType),
		errors.Is(err, bip44.ErrInvalidChange):
		return &Error{Kind: KindInvalidPath, Err: err}
	case errors.Is(err, chainparams.ErrUnknownNetwork):
		return &Error{Kind: KindWrongNetwork, Err: err}
	default:
		return &Error{Kind: KindUnknown, Err: err}
	}
}
