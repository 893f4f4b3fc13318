package keys

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// SignatureSize is the size of a compact r‖s signature.
const SignatureSize = 64

const componentSize = 32

// ErrInvalidSignatureEncoding is returned when signature components can't be
// decoded or don't form a well-formed compact signature.
var ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")

// Signature is an ECDSA secp256k1 signature kept exactly as produced by the
// signer (no S normalization is applied to the compact form).
type Signature struct {
	r secp256k1.ModNScalar
	s secp256k1.ModNScalar
}

// NewSignatureFromParts builds a signature from the MPC signer's response
// parts: bigR is a hex-encoded compressed point whose X coordinate becomes r,
// s is a hex-encoded 32-byte scalar.
func NewSignatureFromParts(bigR, s string) (*Signature, error) {
	rb, err := hex.DecodeString(bigR)
	if err != nil {
		return nil, fmt.Errorf("%w: big_r: %v", ErrInvalidSignatureEncoding, err)
	}
	if len(rb) == 0 {
		return nil, fmt.Errorf("%w: big_r is empty", ErrInvalidSignatureEncoding)
	}
	rb = rb[1:]
	if len(rb) != componentSize {
		return nil, fmt.Errorf("%w: big_r: expected %d bytes after prefix, got %d",
			ErrInvalidSignatureEncoding, componentSize, len(rb))
	}
	sb, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: s: %v", ErrInvalidSignatureEncoding, err)
	}
	if len(sb) != componentSize {
		return nil, fmt.Errorf("%w: s: expected %d bytes, got %d",
			ErrInvalidSignatureEncoding, componentSize, len(sb))
	}
	return NewSignatureFromCompact(append(rb, sb...))
}

// NewSignatureFromCompact decodes a 64-byte r‖s signature. Both components
// must be below the group order.
func NewSignatureFromCompact(b []byte) (*Signature, error) {
	if len(b) != SignatureSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignatureEncoding, SignatureSize, len(b))
	}
	sig := new(Signature)
	if sig.r.SetByteSlice(b[:componentSize]) {
		return nil, fmt.Errorf("%w: r overflows group order", ErrInvalidSignatureEncoding)
	}
	if sig.s.SetByteSlice(b[componentSize:]) {
		return nil, fmt.Errorf("%w: s overflows group order", ErrInvalidSignatureEncoding)
	}
	return sig, nil
}

// Bytes returns compact r‖s representation.
func (sig *Signature) Bytes() [SignatureSize]byte {
	var res [SignatureSize]byte
	r, s := sig.r.Bytes(), sig.s.Bytes()
	copy(res[:componentSize], r[:])
	copy(res[componentSize:], s[:])
	return res
}

// DER returns the canonical (low-S) DER encoding of the signature.
func (sig *Signature) DER() []byte {
	return ecdsa.NewSignature(&sig.r, &sig.s).Serialize()
}

// String returns hex of the compact form.
func (sig *Signature) String() string {
	b := sig.Bytes()
	return hex.EncodeToString(b[:])
}

// Verify checks the signature against the given message hash and key.
func (sig *Signature) Verify(pub *PublicKey, hash []byte) bool {
	if sig.r.IsZero() || sig.s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&sig.r, &sig.s).Verify(hash, pub.point())
}
