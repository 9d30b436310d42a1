package secp256k1

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PubKey is a compressed secp256k1 public key.
type PubKey struct {
	point *Point
}

// Compressed returns the 33-byte compressed SEC1 encoding.
func (p *PubKey) Compressed() []byte {
	return CompressPoint(p.point)
}

func (p *PubKey) btcec() *btcec.PublicKey {
	pub, _ := btcec.ParsePubKey(p.Compressed())
	return pub
}

// SignHash produces a deterministic (RFC-6979), low-S-normalized ECDSA
// signature over a 32-byte digest.
func (k *PrivKey) SignHash(h32 []byte) (r, s *big.Int, err error) {
	sig := ecdsa.Sign(k.btcec(), h32)
	rScalar := sig.R()
	sScalar := sig.S()
	rb := rScalar.Bytes()
	sb := sScalar.Bytes()
	return new(big.Int).SetBytes(rb[:]), new(big.Int).SetBytes(sb[:]), nil
}

// SignHashRecoverable produces a 65-byte packed recoverable signature:
// 1-byte header (27 + recid + 4, since this engine only emits
// compressed-pubkey signatures) followed by 32-byte r and 32-byte s.
func (k *PrivKey) SignHashRecoverable(h32 []byte) ([65]byte, error) {
	var out [65]byte
	sig := ecdsa.SignCompact(k.btcec(), h32, true)
	copy(out[:], sig)
	return out, nil
}

// Verify checks an (r, s) signature over a 32-byte digest.
func (p *PubKey) Verify(h32 []byte, r, s *big.Int) bool {
	var rs, ss secp256k1.ModNScalar
	rs.SetByteSlice(r.Bytes())
	ss.SetByteSlice(s.Bytes())
	sig := ecdsa.NewSignature(&rs, &ss)
	return sig.Verify(h32, p.btcec())
}

// Recover recovers the public key from a 65-byte packed recoverable
// signature and the digest it was computed over.
func Recover(sigCompact [65]byte, h32 []byte) (*PubKey, bool, error) {
	pub, wasCompressed, err := ecdsa.RecoverCompact(sigCompact[:], h32)
	if err != nil {
		return nil, false, ErrBadSignature
	}
	point, err := ParsePublicKey(pub.SerializeCompressed())
	if err != nil {
		return nil, false, ErrBadSignature
	}
	return &PubKey{point: point}, wasCompressed, nil
}
